package usecase

import (
	"context"
	"time"

	"rx-prescription-api/internal/converter"
	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/domain/entity"
	"rx-prescription-api/internal/domain/repository"
	"rx-prescription-api/internal/pdf"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CertificateUsecase interface {
	Create(ctx context.Context, doctorUserID uuid.UUID, req *dto.CreateCertificateRequest) (*dto.CreateCertificateResponse, error)
	GetByID(ctx context.Context, doctorUserID uuid.UUID, id uint) (*dto.CertificateResponse, error)
	GetDocument(ctx context.Context, doctorUserID uuid.UUID, id uint) (*pdf.CertificateDocument, error)
}

type certificateUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	certificateRepo repository.CertificateRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
}

func NewCertificateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	certificateRepo repository.CertificateRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) CertificateUsecase {
	return &certificateUsecase{
		db:              db,
		log:             log,
		certificateRepo: certificateRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
	}
}

func (u *certificateUsecase) Create(ctx context.Context, doctorUserID uuid.UUID, req *dto.CreateCertificateRequest) (*dto.CreateCertificateResponse, error) {
	var validUntil *time.Time
	if req.ValidUntil != "" {
		parsed, err := time.Parse("2006-01-02", req.ValidUntil)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		validUntil = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(tx, doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor for user %s: %+v", doctorUserID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorProfileNotFound
	}

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if patient.CreatedBy != doctorUserID {
		return nil, ErrPatientNotOwned
	}

	certificate := &entity.Certificate{
		CertificateID:   generateRecordKey(certificateKeyPrefix),
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		CertificateType: req.CertificateType,
		IssueDate:       time.Now().UTC().Truncate(24 * time.Hour),
		ValidUntil:      validUntil,
		Content:         req.Content,
		Diagnosis:       req.Diagnosis,
		Recommendations: req.Recommendations,
		Restrictions:    req.Restrictions,
	}

	if err := u.certificateRepo.Create(tx, certificate); err != nil {
		u.log.Warnf("Failed to create certificate: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Certificate created: id=%d, key=%s, patient=%d", certificate.ID, certificate.CertificateID, patient.ID)

	return &dto.CreateCertificateResponse{
		CertificateID: certificate.CertificateID,
		ID:            certificate.ID,
	}, nil
}

func (u *certificateUsecase) GetByID(ctx context.Context, doctorUserID uuid.UUID, id uint) (*dto.CertificateResponse, error) {
	certificate, err := u.findJoined(ctx, doctorUserID, id)
	if err != nil {
		return nil, err
	}
	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) GetDocument(ctx context.Context, doctorUserID uuid.UUID, id uint) (*pdf.CertificateDocument, error) {
	certificate, err := u.findJoined(ctx, doctorUserID, id)
	if err != nil {
		return nil, err
	}
	return converter.CertificateToDocument(certificate), nil
}

func (u *certificateUsecase) findJoined(ctx context.Context, doctorUserID uuid.UUID, id uint) (*entity.Certificate, error) {
	certificate, err := u.certificateRepo.FindByIDForDoctor(u.db.WithContext(ctx), id, doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to find certificate %d: %+v", id, err)
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}
	return certificate, nil
}
