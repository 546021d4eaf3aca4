package pdf

import "time"

// PrescriptionDocument is the fully denormalized view a prescription renders
// from: prescription fields joined with patient, doctor, and ordered line
// items. It is assembled by the converter layer from persisted state; the
// renderer never touches the database.
type PrescriptionDocument struct {
	PrescriptionID          string
	CreatedAt               time.Time
	ChiefComplaint          string
	HistoryOfPresentIllness string
	PastMedicalHistory      string
	PastSurgicalHistory     string
	Diagnosis               string
	Advice                  string
	FollowUpDate            *time.Time
	ConsentObtained         bool

	Patient        PatientBlock
	Doctor         DoctorBlock
	Medicines      []MedicineLine
	Investigations []InvestigationLine
}

type PatientBlock struct {
	FullName string
	Age      int
	Sex      string
	Mobile   string
}

// DoctorBlock carries identity and clinic fields plus optional image asset
// paths. An empty or unreadable path means the asset is absent and the
// renderer falls back to text.
type DoctorBlock struct {
	FullName             string
	Qualification        string
	RegistrationNumber   string
	ClinicName           string
	ClinicAddress        string
	ClinicPhone          string
	LetterheadImagePath  string
	DigitalSignaturePath string
	StampImagePath       string
}

type MedicineLine struct {
	Name         string
	Strength     string
	Dosage       string
	Frequency    string
	Duration     string
	Instructions string
}

type InvestigationLine struct {
	Name  string
	Notes string
}

// CertificateDocument is the joined view a medical certificate renders from
type CertificateDocument struct {
	CertificateID   string
	CertificateType string
	IssueDate       time.Time
	ValidUntil      *time.Time
	Content         string
	Diagnosis       string
	Recommendations string
	Restrictions    string

	Patient PatientBlock
	Doctor  DoctorBlock
}
