package usecase

import (
	"context"

	"rx-prescription-api/internal/converter"
	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorProfileNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

// UpdateProfile applies only the fields present in the request; empty strings
// and nil pointers leave the stored value untouched.
func (u *doctorUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorProfileNotFound
	}

	if req.FullName != "" {
		doctor.FullName = req.FullName
	}
	if req.Qualification != "" {
		doctor.Qualification = req.Qualification
	}
	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.ClinicName != "" {
		doctor.ClinicName = req.ClinicName
	}
	if req.ClinicAddress != "" {
		doctor.ClinicAddress = req.ClinicAddress
	}
	if req.ClinicPhone != "" {
		doctor.ClinicPhone = req.ClinicPhone
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.Mobile != "" {
		doctor.Mobile = req.Mobile
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = req.ConsultationFee
	}
	if req.DigitalSignaturePath != "" {
		doctor.DigitalSignaturePath = req.DigitalSignaturePath
	}
	if req.StampImagePath != "" {
		doctor.StampImagePath = req.StampImagePath
	}
	if req.LetterheadImagePath != "" {
		doctor.LetterheadImagePath = req.LetterheadImagePath
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}
