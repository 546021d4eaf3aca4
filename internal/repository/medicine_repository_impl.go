package repository

import (
	"errors"

	"rx-prescription-api/internal/domain/entity"
	domainRepo "rx-prescription-api/internal/domain/repository"

	"gorm.io/gorm"
)

type medicineRepository struct{}

func NewMedicineRepository() domainRepo.MedicineRepository {
	return &medicineRepository{}
}

func (r *medicineRepository) Create(db *gorm.DB, medicine *entity.Medicine) error {
	return db.Create(medicine).Error
}

func (r *medicineRepository) Search(db *gorm.DB, search string, limit int) ([]entity.Medicine, error) {
	var medicines []entity.Medicine

	query := db.Where("is_active = ?", true)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(generic_name) LIKE LOWER(?)", pattern, pattern)
	}

	err := query.Order("name").Limit(limit).Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) FindByID(db *gorm.DB, id uint) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := db.Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}
