package repository

import (
	"rx-prescription-api/internal/domain/entity"

	"gorm.io/gorm"
)

type InvestigationRepository interface {
	FindAllActive(db *gorm.DB) ([]entity.Investigation, error)
}
