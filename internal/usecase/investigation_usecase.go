package usecase

import (
	"context"

	"rx-prescription-api/internal/converter"
	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type InvestigationUsecase interface {
	List(ctx context.Context) (*dto.InvestigationListResponse, error)
}

type investigationUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	investigationRepo repository.InvestigationRepository
}

func NewInvestigationUsecase(db *gorm.DB, log *logrus.Logger, investigationRepo repository.InvestigationRepository) InvestigationUsecase {
	return &investigationUsecase{
		db:                db,
		log:               log,
		investigationRepo: investigationRepo,
	}
}

func (u *investigationUsecase) List(ctx context.Context) (*dto.InvestigationListResponse, error) {
	investigations, err := u.investigationRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list investigations: %+v", err)
		return nil, err
	}

	responses := converter.InvestigationsToResponses(investigations)
	return &dto.InvestigationListResponse{
		Investigations: responses,
		Total:          len(responses),
	}, nil
}
