package repository

import (
	"rx-prescription-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CertificateRepository interface {
	Create(db *gorm.DB, certificate *entity.Certificate) error

	// FindByIDForDoctor returns the certificate joined with its patient and
	// doctor, scoped to the issuing doctor's user id.
	FindByIDForDoctor(db *gorm.DB, id uint, doctorUserID uuid.UUID) (*entity.Certificate, error)
}
