package repository

import (
	"rx-prescription-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientHistoryRepository interface {
	Create(db *gorm.DB, history *entity.PatientHistory) error
	FindByPatientForDoctor(db *gorm.DB, patientID uint, doctorUserID uuid.UUID) ([]entity.PatientHistory, error)
}
