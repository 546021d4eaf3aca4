package usecase

import (
	"context"

	"rx-prescription-api/internal/converter"
	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/domain/entity"
	"rx-prescription-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	Create(ctx context.Context, doctorUserID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context, doctorUserID uuid.UUID, search string) (*dto.PatientListResponse, error)
	GetHistory(ctx context.Context, doctorUserID uuid.UUID, patientID uint) (*dto.PatientHistoryListResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	historyRepo repository.PatientHistoryRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	historyRepo repository.PatientHistoryRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		historyRepo: historyRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, doctorUserID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		PatientID:  generateRecordKey(patientKeyPrefix),
		FullName:   req.FullName,
		Age:        req.Age,
		Sex:        req.Sex,
		Mobile:     req.Mobile,
		Email:      req.Email,
		Address:    req.Address,
		BloodGroup: req.BloodGroup,
		Allergies:  req.Allergies,
		CreatedBy:  doctorUserID,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient created: id=%d, key=%s", patient.ID, patient.PatientID)

	return converter.PatientToResponse(patient), nil
}

// List returns only patients created by the requesting doctor, with
// prescription counts and the most recent visit joined in.
func (u *patientUsecase) List(ctx context.Context, doctorUserID uuid.UUID, search string) (*dto.PatientListResponse, error) {
	summaries, err := u.patientRepo.FindByCreator(u.db.WithContext(ctx), doctorUserID, search)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	patients := converter.PatientSummariesToResponses(summaries)
	return &dto.PatientListResponse{
		Patients: patients,
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetHistory(ctx context.Context, doctorUserID uuid.UUID, patientID uint) (*dto.PatientHistoryListResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if patient.CreatedBy != doctorUserID {
		return nil, ErrPatientNotOwned
	}

	entries, err := u.historyRepo.FindByPatientForDoctor(u.db.WithContext(ctx), patientID, doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to load patient history: %+v", err)
		return nil, err
	}

	history := converter.PatientHistoryToResponses(entries)
	return &dto.PatientHistoryListResponse{
		History: history,
		Total:   len(history),
	}, nil
}
