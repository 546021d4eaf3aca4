package repository

import (
	"time"

	"rx-prescription-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientSummary is a patient row joined with prescription aggregates for the
// list view
type PatientSummary struct {
	entity.Patient
	PrescriptionCount int        `json:"prescription_count"`
	LastVisit         *time.Time `json:"last_visit"`
}

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	FindByCreator(db *gorm.DB, createdBy uuid.UUID, search string) ([]PatientSummary, error)
}
