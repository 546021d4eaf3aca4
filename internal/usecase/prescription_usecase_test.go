package usecase

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/domain/entity"
	"rx-prescription-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testSchema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		user_type TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE doctors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL UNIQUE REFERENCES users (id),
		full_name TEXT NOT NULL,
		qualification TEXT,
		specialization TEXT,
		registration_number TEXT NOT NULL UNIQUE,
		clinic_name TEXT,
		clinic_address TEXT,
		clinic_phone TEXT,
		email TEXT,
		mobile TEXT,
		experience_years INTEGER DEFAULT 0,
		consultation_fee NUMERIC,
		digital_signature_path TEXT,
		stamp_image_path TEXT,
		letterhead_image_path TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE patients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		age INTEGER NOT NULL,
		sex TEXT NOT NULL,
		mobile TEXT,
		email TEXT,
		address TEXT,
		blood_group TEXT,
		allergies TEXT,
		created_by TEXT NOT NULL REFERENCES users (id),
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE medicines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		generic_name TEXT,
		brand TEXT,
		strength TEXT,
		form TEXT,
		manufacturer TEXT,
		schedule TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_by TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE investigations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		category TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at DATETIME
	)`,
	`CREATE TABLE prescriptions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		prescription_id TEXT NOT NULL UNIQUE,
		patient_id INTEGER NOT NULL REFERENCES patients (id),
		doctor_id INTEGER NOT NULL REFERENCES doctors (id),
		chief_complaint TEXT NOT NULL,
		history_of_present_illness TEXT,
		past_medical_history TEXT,
		past_surgical_history TEXT,
		diagnosis TEXT,
		follow_up_date DATE,
		advice TEXT,
		consent_obtained BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE prescription_medicines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		prescription_id INTEGER NOT NULL REFERENCES prescriptions (id),
		medicine_id INTEGER NOT NULL REFERENCES medicines (id),
		dosage TEXT NOT NULL,
		frequency TEXT NOT NULL,
		duration TEXT NOT NULL,
		instructions TEXT
	)`,
	`CREATE TABLE prescription_investigations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		prescription_id INTEGER NOT NULL REFERENCES prescriptions (id),
		investigation_id INTEGER NOT NULL REFERENCES investigations (id),
		notes TEXT
	)`,
	`CREATE TABLE patient_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER NOT NULL REFERENCES patients (id),
		doctor_id INTEGER NOT NULL REFERENCES doctors (id),
		visit_date DATE NOT NULL,
		symptoms TEXT,
		diagnosis TEXT,
		treatment TEXT,
		created_at DATETIME
	)`,
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory databases exist per connection; keep the pool at one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range testSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestPrescriptionUsecase(db *gorm.DB) PrescriptionUsecase {
	return NewPrescriptionUsecase(
		db,
		testLogger(),
		repository.NewPrescriptionRepository(),
		repository.NewPatientRepository(),
		repository.NewDoctorRepository(),
		repository.NewPatientHistoryRepository(),
	)
}

func seedDoctor(t *testing.T, db *gorm.DB, email, regNo string) (uuid.UUID, *entity.Doctor) {
	t.Helper()

	user := &entity.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "hashed",
		UserType: entity.UserTypeDoctor,
	}
	require.NoError(t, db.Create(user).Error)

	doctor := &entity.Doctor{
		UserID:             user.ID,
		FullName:           "John Smith",
		Qualification:      "MBBS, MD",
		Specialization:     "General Medicine",
		RegistrationNumber: regNo,
	}
	require.NoError(t, db.Create(doctor).Error)

	return user.ID, doctor
}

func seedPatient(t *testing.T, db *gorm.DB, createdBy uuid.UUID) *entity.Patient {
	t.Helper()

	patient := &entity.Patient{
		PatientID: generateRecordKey(patientKeyPrefix),
		FullName:  "Jane Roe",
		Age:       34,
		Sex:       entity.SexFemale,
		Mobile:    "5551234567",
		CreatedBy: createdBy,
	}
	require.NoError(t, db.Create(patient).Error)
	return patient
}

func seedMedicine(t *testing.T, db *gorm.DB, name, strength string) *entity.Medicine {
	t.Helper()

	active := true
	medicine := &entity.Medicine{
		Name:     name,
		Strength: strength,
		IsActive: &active,
	}
	require.NoError(t, db.Create(medicine).Error)
	return medicine
}

func seedInvestigation(t *testing.T, db *gorm.DB, name string) *entity.Investigation {
	t.Helper()

	active := true
	investigation := &entity.Investigation{
		Name:     name,
		IsActive: &active,
	}
	require.NoError(t, db.Create(investigation).Error)
	return investigation
}

func TestCreatePrescriptionWithExistingPatient(t *testing.T) {
	db := openTestDB(t)
	uc := newTestPrescriptionUsecase(db)

	doctorUserID, doctor := seedDoctor(t, db, "doc@example.com", "REG-1001")
	patient := seedPatient(t, db, doctorUserID)
	amox := seedMedicine(t, db, "Amoxicillin", "500mg")
	para := seedMedicine(t, db, "Paracetamol", "650mg")
	cbc := seedInvestigation(t, db, "CBC")

	req := &dto.CreatePrescriptionRequest{
		PatientID:       patient.ID,
		ChiefComplaint:  "Fever and sore throat",
		Diagnosis:       "Acute pharyngitis",
		Advice:          "Plenty of fluids",
		FollowUpDate:    "2026-09-10",
		ConsentObtained: true,
		Medicines: []dto.PrescriptionMedicineRequest{
			{MedicineID: amox.ID, Dosage: "500mg", Frequency: "TID", Duration: "5 days"},
			{MedicineID: para.ID, Dosage: "650mg", Frequency: "SOS", Duration: "3 days", Instructions: "After food"},
		},
		Investigations: []dto.PrescriptionInvestigationRequest{
			{InvestigationID: cbc.ID, Notes: "Fasting not required"},
		},
	}

	result, err := uc.Create(context.Background(), doctorUserID, req)
	require.NoError(t, err)
	require.NotZero(t, result.ID)
	require.Regexp(t, `^RX[0-9A-F]{8}$`, result.PrescriptionID)

	var prescription entity.Prescription
	require.NoError(t, db.First(&prescription, result.ID).Error)
	require.Equal(t, patient.ID, prescription.PatientID)
	require.Equal(t, doctor.ID, prescription.DoctorID)
	require.NotNil(t, prescription.FollowUpDate)
	require.True(t, prescription.ConsentObtained)

	var lineCount int64
	require.NoError(t, db.Model(&entity.PrescriptionMedicine{}).Where("prescription_id = ?", result.ID).Count(&lineCount).Error)
	require.EqualValues(t, 2, lineCount)

	// One visit history entry per committed prescription, with the medicine
	// payload serialized as treatment
	var history entity.PatientHistory
	require.NoError(t, db.Where("patient_id = ?", patient.ID).First(&history).Error)
	require.Equal(t, doctor.ID, history.DoctorID)
	require.Equal(t, "Fever and sore throat", history.Symptoms)

	var treatment []dto.PrescriptionMedicineRequest
	require.NoError(t, json.Unmarshal([]byte(history.Treatment), &treatment))
	require.Len(t, treatment, 2)
	require.Equal(t, amox.ID, treatment[0].MedicineID)
}

func TestCreatePrescriptionWithInlinePatient(t *testing.T) {
	db := openTestDB(t)
	uc := newTestPrescriptionUsecase(db)

	doctorUserID, _ := seedDoctor(t, db, "doc@example.com", "REG-1001")

	req := &dto.CreatePrescriptionRequest{
		PatientInfo: &dto.CreatePatientRequest{
			FullName: "Walk-in Patient",
			Age:      52,
			Sex:      entity.SexMale,
		},
		ChiefComplaint: "Back pain",
	}

	result, err := uc.Create(context.Background(), doctorUserID, req)
	require.NoError(t, err)

	var patient entity.Patient
	require.NoError(t, db.Where("full_name = ?", "Walk-in Patient").First(&patient).Error)
	require.Regexp(t, `^PAT[0-9A-F]{8}$`, patient.PatientID)
	require.Equal(t, doctorUserID, patient.CreatedBy)

	var prescription entity.Prescription
	require.NoError(t, db.First(&prescription, result.ID).Error)
	require.Equal(t, patient.ID, prescription.PatientID)
}

func TestCreatePrescriptionRequiresPatientReference(t *testing.T) {
	db := openTestDB(t)
	uc := newTestPrescriptionUsecase(db)

	doctorUserID, _ := seedDoctor(t, db, "doc@example.com", "REG-1001")

	_, err := uc.Create(context.Background(), doctorUserID, &dto.CreatePrescriptionRequest{
		ChiefComplaint: "Headache",
	})
	require.ErrorIs(t, err, ErrNoPatientReference)
}

func TestCreatePrescriptionMissingDoctorProfile(t *testing.T) {
	db := openTestDB(t)
	uc := newTestPrescriptionUsecase(db)

	// User exists but has no doctor profile
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "nobody@example.com",
		Password: "hashed",
		UserType: entity.UserTypeDoctor,
	}
	require.NoError(t, db.Create(user).Error)

	_, err := uc.Create(context.Background(), user.ID, &dto.CreatePrescriptionRequest{
		PatientInfo: &dto.CreatePatientRequest{FullName: "Someone", Age: 30, Sex: entity.SexOther},
		ChiefComplaint: "Cough",
	})
	require.ErrorIs(t, err, ErrDoctorProfileNotFound)

	// Nothing was written
	var patientCount int64
	require.NoError(t, db.Model(&entity.Patient{}).Count(&patientCount).Error)
	require.Zero(t, patientCount)
}

func TestCreatePrescriptionPatientOwnership(t *testing.T) {
	db := openTestDB(t)
	uc := newTestPrescriptionUsecase(db)

	ownerUserID, _ := seedDoctor(t, db, "owner@example.com", "REG-1001")
	otherUserID, _ := seedDoctor(t, db, "other@example.com", "REG-2002")
	patient := seedPatient(t, db, ownerUserID)

	_, err := uc.Create(context.Background(), otherUserID, &dto.CreatePrescriptionRequest{
		PatientID:      patient.ID,
		ChiefComplaint: "Fatigue",
	})
	require.ErrorIs(t, err, ErrPatientNotOwned)

	_, err = uc.Create(context.Background(), otherUserID, &dto.CreatePrescriptionRequest{
		PatientID:      99999,
		ChiefComplaint: "Fatigue",
	})
	require.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCreatePrescriptionInvalidFollowUpDate(t *testing.T) {
	db := openTestDB(t)
	uc := newTestPrescriptionUsecase(db)

	doctorUserID, _ := seedDoctor(t, db, "doc@example.com", "REG-1001")
	patient := seedPatient(t, db, doctorUserID)

	_, err := uc.Create(context.Background(), doctorUserID, &dto.CreatePrescriptionRequest{
		PatientID:      patient.ID,
		ChiefComplaint: "Headache",
		FollowUpDate:   "10-09-2026",
	})
	require.ErrorIs(t, err, ErrInvalidDateFormat)
}

// A failing line insert must leave no partial state behind, including the
// inline-created patient.
func TestCreatePrescriptionRollsBackOnLineFailure(t *testing.T) {
	db := openTestDB(t)
	uc := newTestPrescriptionUsecase(db)

	doctorUserID, _ := seedDoctor(t, db, "doc@example.com", "REG-1001")

	req := &dto.CreatePrescriptionRequest{
		PatientInfo: &dto.CreatePatientRequest{
			FullName: "Transient Patient",
			Age:      40,
			Sex:      entity.SexMale,
		},
		ChiefComplaint: "Chest pain",
		Medicines: []dto.PrescriptionMedicineRequest{
			// Nonexistent medicine id forces a foreign key violation mid-transaction
			{MedicineID: 99999, Dosage: "10mg", Frequency: "OD", Duration: "7 days"},
		},
	}

	_, err := uc.Create(context.Background(), doctorUserID, req)
	require.Error(t, err)

	for _, model := range []interface{}{
		&entity.Patient{},
		&entity.Prescription{},
		&entity.PrescriptionMedicine{},
		&entity.PatientHistory{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		require.Zero(t, count, "expected rollback to leave no rows in %T", model)
	}
}

func TestGetPrescriptionScopedToAuthoringDoctor(t *testing.T) {
	db := openTestDB(t)
	uc := newTestPrescriptionUsecase(db)

	authorUserID, _ := seedDoctor(t, db, "author@example.com", "REG-1001")
	otherUserID, _ := seedDoctor(t, db, "other@example.com", "REG-2002")
	patient := seedPatient(t, db, authorUserID)
	med := seedMedicine(t, db, "Ibuprofen", "400mg")

	result, err := uc.Create(context.Background(), authorUserID, &dto.CreatePrescriptionRequest{
		PatientID:      patient.ID,
		ChiefComplaint: "Knee pain",
		Medicines: []dto.PrescriptionMedicineRequest{
			{MedicineID: med.ID, Dosage: "400mg", Frequency: "BID", Duration: "5 days"},
		},
	})
	require.NoError(t, err)

	got, err := uc.GetByID(context.Background(), authorUserID, result.ID)
	require.NoError(t, err)
	require.Equal(t, result.PrescriptionID, got.PrescriptionID)
	require.Equal(t, "Jane Roe", got.Patient.FullName)
	require.Len(t, got.Medicines, 1)
	require.Equal(t, "Ibuprofen", got.Medicines[0].Name)

	_, err = uc.GetByID(context.Background(), otherUserID, result.ID)
	require.ErrorIs(t, err, ErrPrescriptionNotFound)
}

// Line order in responses must match the order medicines were submitted in
func TestGetPrescriptionPreservesMedicineOrder(t *testing.T) {
	db := openTestDB(t)
	uc := newTestPrescriptionUsecase(db)

	doctorUserID, _ := seedDoctor(t, db, "doc@example.com", "REG-1001")
	patient := seedPatient(t, db, doctorUserID)

	first := seedMedicine(t, db, "Cetirizine", "10mg")
	second := seedMedicine(t, db, "Montelukast", "10mg")
	third := seedMedicine(t, db, "Budesonide", "200mcg")

	// Submit in an order different from catalog insertion order
	result, err := uc.Create(context.Background(), doctorUserID, &dto.CreatePrescriptionRequest{
		PatientID:      patient.ID,
		ChiefComplaint: "Allergic rhinitis",
		Medicines: []dto.PrescriptionMedicineRequest{
			{MedicineID: third.ID, Dosage: "2 puffs", Frequency: "BID", Duration: "30 days"},
			{MedicineID: first.ID, Dosage: "10mg", Frequency: "OD", Duration: "14 days"},
			{MedicineID: second.ID, Dosage: "10mg", Frequency: "HS", Duration: "30 days"},
		},
	})
	require.NoError(t, err)

	got, err := uc.GetByID(context.Background(), doctorUserID, result.ID)
	require.NoError(t, err)
	require.Len(t, got.Medicines, 3)
	require.Equal(t, "Budesonide", got.Medicines[0].Name)
	require.Equal(t, "Cetirizine", got.Medicines[1].Name)
	require.Equal(t, "Montelukast", got.Medicines[2].Name)
}
