package repository

import (
	"errors"

	"rx-prescription-api/internal/domain/entity"
	domainRepo "rx-prescription-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *prescriptionRepository) CreateMedicineLine(db *gorm.DB, line *entity.PrescriptionMedicine) error {
	return db.Create(line).Error
}

func (r *prescriptionRepository) CreateInvestigationLine(db *gorm.DB, line *entity.PrescriptionInvestigation) error {
	return db.Create(line).Error
}

func (r *prescriptionRepository) FindByIDForDoctor(db *gorm.DB, id uint, doctorUserID uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.
		Joins("JOIN doctors ON doctors.id = prescriptions.doctor_id").
		Where("prescriptions.id = ? AND doctors.user_id = ?", id, doctorUserID).
		Preload("Patient").
		Preload("Doctor").
		Preload("Medicines", func(db *gorm.DB) *gorm.DB {
			return db.Order("prescription_medicines.id")
		}).
		Preload("Medicines.Medicine").
		Preload("Investigations", func(db *gorm.DB) *gorm.DB {
			return db.Order("prescription_investigations.id")
		}).
		Preload("Investigations.Investigation").
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}
