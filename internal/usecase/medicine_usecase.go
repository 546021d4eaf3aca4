package usecase

import (
	"context"

	"rx-prescription-api/internal/converter"
	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/domain/entity"
	"rx-prescription-api/internal/domain/repository"
	"rx-prescription-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const medicineSearchLimit = 20

type MedicineUsecase interface {
	Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	Search(ctx context.Context, search string) (*dto.MedicineListResponse, error)
	SearchExternal(ctx context.Context, search string) ([]dto.ExternalMedicineResponse, error)
}

type medicineUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
	openFDA      *service.OpenFDAService
}

func NewMedicineUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicineRepo repository.MedicineRepository,
	openFDA *service.OpenFDAService,
) MedicineUsecase {
	return &medicineUsecase{
		db:           db,
		log:          log,
		medicineRepo: medicineRepo,
		openFDA:      openFDA,
	}
}

func (u *medicineUsecase) Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	active := true
	medicine := &entity.Medicine{
		Name:         req.Name,
		GenericName:  req.GenericName,
		Brand:        req.Brand,
		Strength:     req.Strength,
		Form:         req.Form,
		Manufacturer: req.Manufacturer,
		Schedule:     req.Schedule,
		IsActive:     &active,
		CreatedBy:    &createdBy,
	}

	if err := u.medicineRepo.Create(u.db.WithContext(ctx), medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Search(ctx context.Context, search string) (*dto.MedicineListResponse, error) {
	medicines, err := u.medicineRepo.Search(u.db.WithContext(ctx), search, medicineSearchLimit)
	if err != nil {
		u.log.Warnf("Failed to search medicines: %+v", err)
		return nil, err
	}

	responses := converter.MedicinesToResponses(medicines)
	return &dto.MedicineListResponse{
		Medicines: responses,
		Total:     len(responses),
	}, nil
}

// SearchExternal queries the upstream drug-label API and falls back to the
// local catalog when the upstream is unreachable or errors.
func (u *medicineUsecase) SearchExternal(ctx context.Context, search string) ([]dto.ExternalMedicineResponse, error) {
	results, err := u.openFDA.Search(ctx, search)
	if err == nil {
		return results, nil
	}

	u.log.Warnf("External medicine search failed, falling back to local catalog: %+v", err)

	medicines, err := u.medicineRepo.Search(u.db.WithContext(ctx), search, medicineSearchLimit)
	if err != nil {
		u.log.Warnf("Failed to search medicines: %+v", err)
		return nil, err
	}

	fallback := make([]dto.ExternalMedicineResponse, 0, len(medicines))
	for _, medicine := range medicines {
		fallback = append(fallback, dto.ExternalMedicineResponse{
			Name:         medicine.Name,
			GenericName:  medicine.GenericName,
			Brand:        medicine.Brand,
			Strength:     medicine.Strength,
			Form:         medicine.Form,
			Manufacturer: medicine.Manufacturer,
		})
	}

	return fallback, nil
}
