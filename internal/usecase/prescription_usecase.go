package usecase

import (
	"context"
	"encoding/json"
	"errors"
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

var (
	ErrDoctorProfileNotFound = errors.New("doctor profile not found")
	ErrPatientNotFound       = errors.New("patient not found")
	ErrPatientNotOwned       = errors.New("patient does not belong to you")
	ErrPrescriptionNotFound  = errors.New("prescription not found")
	ErrNoPatientReference    = errors.New("either patient_id or patient_info is required")
	ErrInvalidDateFormat     = errors.New("invalid date format, use YYYY-MM-DD")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, doctorUserID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.CreatePrescriptionResponse, error)
	GetByID(ctx context.Context, doctorUserID uuid.UUID, id uint) (*dto.PrescriptionResponse, error)
	GetDocument(ctx context.Context, doctorUserID uuid.UUID, id uint) (*pdf.PrescriptionDocument, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	doctorRepo       repository.DoctorRepository
	historyRepo      repository.PatientHistoryRepository
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	historyRepo repository.PatientHistoryRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
		historyRepo:      historyRepo,
	}
}

// Create runs the authoring transaction: resolve or create the patient,
// resolve the doctor, insert the prescription with its ordered medicine and
// investigation lines, and append one visit history entry. Every write shares
// one transaction; no partial state survives a failure on any step.
func (u *prescriptionUsecase) Create(ctx context.Context, doctorUserID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.CreatePrescriptionResponse, error) {
	if req.PatientID == 0 && req.PatientInfo == nil {
		return nil, ErrNoPatientReference
	}

	var followUpDate *time.Time
	if req.FollowUpDate != "" {
		parsed, err := time.Parse("2006-01-02", req.FollowUpDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		followUpDate = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Resolve the doctor before writing anything; a missing profile aborts
	// the whole transaction.
	doctor, err := u.doctorRepo.FindByUserID(tx, doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor for user %s: %+v", doctorUserID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorProfileNotFound
	}

	finalPatientID, err := u.resolvePatient(tx, doctorUserID, req)
	if err != nil {
		return nil, err
	}

	prescription := &entity.Prescription{
		PrescriptionID:          generateRecordKey(prescriptionKeyPrefix),
		PatientID:               finalPatientID,
		DoctorID:                doctor.ID,
		ChiefComplaint:          req.ChiefComplaint,
		HistoryOfPresentIllness: req.HistoryOfPresentIllness,
		PastMedicalHistory:      req.PastMedicalHistory,
		PastSurgicalHistory:     req.PastSurgicalHistory,
		Diagnosis:               req.Diagnosis,
		FollowUpDate:            followUpDate,
		Advice:                  req.Advice,
		ConsentObtained:         req.ConsentObtained,
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	// Line inserts preserve payload order; row order carries display order
	for _, medicine := range req.Medicines {
		line := &entity.PrescriptionMedicine{
			PrescriptionID: prescription.ID,
			MedicineID:     medicine.MedicineID,
			Dosage:         medicine.Dosage,
			Frequency:      medicine.Frequency,
			Duration:       medicine.Duration,
			Instructions:   medicine.Instructions,
		}
		if err := u.prescriptionRepo.CreateMedicineLine(tx, line); err != nil {
			u.log.Warnf("Failed to create medicine line: %+v", err)
			return nil, err
		}
	}

	for _, investigation := range req.Investigations {
		line := &entity.PrescriptionInvestigation{
			PrescriptionID:  prescription.ID,
			InvestigationID: investigation.InvestigationID,
			Notes:           investigation.Notes,
		}
		if err := u.prescriptionRepo.CreateInvestigationLine(tx, line); err != nil {
			u.log.Warnf("Failed to create investigation line: %+v", err)
			return nil, err
		}
	}

	treatment, err := json.Marshal(req.Medicines)
	if err != nil {
		u.log.Warnf("Failed to serialize treatment: %+v", err)
		return nil, err
	}

	history := &entity.PatientHistory{
		PatientID: finalPatientID,
		DoctorID:  doctor.ID,
		VisitDate: time.Now().UTC().Truncate(24 * time.Hour),
		Symptoms:  req.ChiefComplaint,
		Diagnosis: req.Diagnosis,
		Treatment: string(treatment),
	}

	if err := u.historyRepo.Create(tx, history); err != nil {
		u.log.Warnf("Failed to create patient history entry: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Prescription created: id=%d, key=%s, patient=%d, doctor=%d",
		prescription.ID, prescription.PrescriptionID, finalPatientID, doctor.ID)

	return &dto.CreatePrescriptionResponse{
		PrescriptionID: prescription.PrescriptionID,
		ID:             prescription.ID,
	}, nil
}

// resolvePatient returns the numeric patient id the prescription links to.
// An existing reference must belong to the authoring doctor; otherwise one
// patient row is created inline inside the same transaction.
func (u *prescriptionUsecase) resolvePatient(tx *gorm.DB, doctorUserID uuid.UUID, req *dto.CreatePrescriptionRequest) (uint, error) {
	if req.PatientID != 0 {
		patient, err := u.patientRepo.FindByID(tx, req.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
			return 0, err
		}
		if patient == nil {
			return 0, ErrPatientNotFound
		}
		if patient.CreatedBy != doctorUserID {
			return 0, ErrPatientNotOwned
		}
		return patient.ID, nil
	}

	patient := &entity.Patient{
		PatientID:  generateRecordKey(patientKeyPrefix),
		FullName:   req.PatientInfo.FullName,
		Age:        req.PatientInfo.Age,
		Sex:        req.PatientInfo.Sex,
		Mobile:     req.PatientInfo.Mobile,
		Email:      req.PatientInfo.Email,
		Address:    req.PatientInfo.Address,
		BloodGroup: req.PatientInfo.BloodGroup,
		Allergies:  req.PatientInfo.Allergies,
		CreatedBy:  doctorUserID,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create inline patient: %+v", err)
		return 0, err
	}
	return patient.ID, nil
}

func (u *prescriptionUsecase) GetByID(ctx context.Context, doctorUserID uuid.UUID, id uint) (*dto.PrescriptionResponse, error) {
	prescription, err := u.findJoined(ctx, doctorUserID, id)
	if err != nil {
		return nil, err
	}
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetDocument(ctx context.Context, doctorUserID uuid.UUID, id uint) (*pdf.PrescriptionDocument, error) {
	prescription, err := u.findJoined(ctx, doctorUserID, id)
	if err != nil {
		return nil, err
	}
	return converter.PrescriptionToDocument(prescription), nil
}

func (u *prescriptionUsecase) findJoined(ctx context.Context, doctorUserID uuid.UUID, id uint) (*entity.Prescription, error) {
	prescription, err := u.prescriptionRepo.FindByIDForDoctor(u.db.WithContext(ctx), id, doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to find prescription %d: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	return prescription, nil
}
