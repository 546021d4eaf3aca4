package repository

import (
	"rx-prescription-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	CreateMedicineLine(db *gorm.DB, line *entity.PrescriptionMedicine) error
	CreateInvestigationLine(db *gorm.DB, line *entity.PrescriptionInvestigation) error

	// FindByIDForDoctor returns the fully joined prescription (patient, doctor,
	// ordered medicine and investigation lines) scoped to the doctor user who
	// authored it. Returns nil when the prescription does not exist or belongs
	// to another doctor.
	FindByIDForDoctor(db *gorm.DB, id uint, doctorUserID uuid.UUID) (*entity.Prescription, error)
}
