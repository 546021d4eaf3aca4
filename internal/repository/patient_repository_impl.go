package repository

import (
	"errors"

	"rx-prescription-api/internal/domain/entity"
	domainRepo "rx-prescription-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByCreator(db *gorm.DB, createdBy uuid.UUID, search string) ([]domainRepo.PatientSummary, error) {
	var summaries []domainRepo.PatientSummary

	query := db.Model(&entity.Patient{}).
		Select("patients.*, COUNT(prescriptions.id) AS prescription_count, MAX(prescriptions.created_at) AS last_visit").
		Joins("LEFT JOIN prescriptions ON prescriptions.patient_id = patients.id").
		Where("patients.created_by = ?", createdBy)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"LOWER(patients.full_name) LIKE LOWER(?) OR patients.mobile LIKE ? OR patients.patient_id LIKE ?",
			pattern, pattern, pattern,
		)
	}

	err := query.Group("patients.id").
		Order("patients.created_at DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
