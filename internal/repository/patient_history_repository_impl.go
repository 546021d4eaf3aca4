package repository

import (
	"rx-prescription-api/internal/domain/entity"
	domainRepo "rx-prescription-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientHistoryRepository struct{}

func NewPatientHistoryRepository() domainRepo.PatientHistoryRepository {
	return &patientHistoryRepository{}
}

func (r *patientHistoryRepository) Create(db *gorm.DB, history *entity.PatientHistory) error {
	return db.Create(history).Error
}

func (r *patientHistoryRepository) FindByPatientForDoctor(db *gorm.DB, patientID uint, doctorUserID uuid.UUID) ([]entity.PatientHistory, error) {
	var entries []entity.PatientHistory
	err := db.
		Joins("JOIN doctors ON doctors.id = patient_history.doctor_id").
		Where("patient_history.patient_id = ? AND doctors.user_id = ?", patientID, doctorUserID).
		Preload("Doctor").
		Order("patient_history.visit_date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
