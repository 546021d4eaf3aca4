package repository

import (
	"errors"

	"rx-prescription-api/internal/domain/entity"
	domainRepo "rx-prescription-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type certificateRepository struct{}

func NewCertificateRepository() domainRepo.CertificateRepository {
	return &certificateRepository{}
}

func (r *certificateRepository) Create(db *gorm.DB, certificate *entity.Certificate) error {
	return db.Create(certificate).Error
}

func (r *certificateRepository) FindByIDForDoctor(db *gorm.DB, id uint, doctorUserID uuid.UUID) (*entity.Certificate, error) {
	var certificate entity.Certificate
	err := db.
		Joins("JOIN doctors ON doctors.id = certificates.doctor_id").
		Where("certificates.id = ? AND doctors.user_id = ?", id, doctorUserID).
		Preload("Patient").
		Preload("Doctor").
		First(&certificate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &certificate, nil
}
