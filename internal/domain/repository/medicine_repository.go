package repository

import (
	"rx-prescription-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicineRepository interface {
	Create(db *gorm.DB, medicine *entity.Medicine) error
	Search(db *gorm.DB, search string, limit int) ([]entity.Medicine, error)
	FindByID(db *gorm.DB, id uint) (*entity.Medicine, error)
}
