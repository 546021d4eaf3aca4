package repository

import (
	"rx-prescription-api/internal/domain/entity"
	domainRepo "rx-prescription-api/internal/domain/repository"

	"gorm.io/gorm"
)

type investigationRepository struct{}

func NewInvestigationRepository() domainRepo.InvestigationRepository {
	return &investigationRepository{}
}

func (r *investigationRepository) FindAllActive(db *gorm.DB) ([]entity.Investigation, error) {
	var investigations []entity.Investigation
	err := db.Where("is_active = ?", true).
		Order("category, name").
		Find(&investigations).Error
	if err != nil {
		return nil, err
	}
	return investigations, nil
}
