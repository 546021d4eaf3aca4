package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func lineTexts(lines []docLine) []string {
	texts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.style != styleSpacer {
			texts = append(texts, line.text)
		}
	}
	return texts
}

func fullDocument() *PrescriptionDocument {
	followUp := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return &PrescriptionDocument{
		PrescriptionID:          "RX1A2B3C4D",
		CreatedAt:               time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
		ChiefComplaint:          "Fever and sore throat",
		HistoryOfPresentIllness: "Three days of fever",
		PastMedicalHistory:      "Hypertension",
		PastSurgicalHistory:     "Appendectomy 2015",
		Diagnosis:               "Acute pharyngitis",
		Advice:                  "Plenty of fluids",
		FollowUpDate:            &followUp,
		ConsentObtained:         true,
		Patient: PatientBlock{
			FullName: "Jane Roe",
			Age:      34,
			Sex:      "female",
			Mobile:   "5551234567",
		},
		Doctor: DoctorBlock{
			FullName:           "John Smith",
			Qualification:      "MBBS, MD",
			RegistrationNumber: "REG-1001",
		},
		Medicines: []MedicineLine{
			{Name: "Amoxicillin", Strength: "500mg", Dosage: "500mg", Frequency: "TID", Duration: "5 days"},
			{Name: "Paracetamol", Strength: "650mg", Dosage: "650mg", Frequency: "SOS", Duration: "3 days", Instructions: "After food"},
		},
		Investigations: []InvestigationLine{
			{Name: "CBC", Notes: "Fasting not required"},
		},
	}
}

func TestPrescriptionLinesFullDocument(t *testing.T) {
	texts := lineTexts(prescriptionLines(fullDocument()))

	require.Contains(t, texts, "Patient Name: Jane Roe")
	require.Contains(t, texts, "Age: 34 | Sex: female")
	require.Contains(t, texts, "Mobile: 5551234567")
	require.Contains(t, texts, "Prescription ID: RX1A2B3C4D")
	require.Contains(t, texts, "Chief Complaint: Fever and sore throat")
	require.Contains(t, texts, "History: Three days of fever")
	require.Contains(t, texts, "Past Medical History: Hypertension")
	require.Contains(t, texts, "Past Surgical History: Appendectomy 2015")
	require.Contains(t, texts, "Diagnosis: Acute pharyngitis")
	require.Contains(t, texts, "Medications:")
	require.Contains(t, texts, "1. Amoxicillin (500mg)")
	require.Contains(t, texts, "Dosage: 500mg, Frequency: TID, Duration: 5 days")
	require.Contains(t, texts, "2. Paracetamol (650mg)")
	require.Contains(t, texts, "Instructions: After food")
	require.Contains(t, texts, "Investigations Advised:")
	require.Contains(t, texts, "1. CBC")
	require.Contains(t, texts, "Notes: Fasting not required")
	require.Contains(t, texts, "Advice: Plenty of fluids")
	require.Contains(t, texts, "Follow-up Date: 10 Sep 2026")
	require.Contains(t, texts, "Consent: The patient was informed about complete treatment and prognosis of the illness.")
	require.Contains(t, texts, "In case the complaint aggravates in absence of the doctor, please admit the patient.")
}

// Absent data must suppress the whole section, heading included
func TestPrescriptionLinesOmitEmptySections(t *testing.T) {
	d := &PrescriptionDocument{
		PrescriptionID: "RXAAAA0000",
		CreatedAt:      time.Now(),
		ChiefComplaint: "Headache",
		Patient:        PatientBlock{FullName: "Jane Roe", Age: 34, Sex: "female"},
	}

	texts := lineTexts(prescriptionLines(d))

	require.NotContains(t, texts, "Medications:")
	require.NotContains(t, texts, "Investigations Advised:")
	for _, text := range texts {
		require.NotContains(t, text, "Diagnosis:")
		require.NotContains(t, text, "Advice:")
		require.NotContains(t, text, "Follow-up Date:")
		require.NotContains(t, text, "Consent:")
	}
	require.Contains(t, texts, "Mobile: Not provided")
}

func TestPrescriptionLinesMedicationNumbering(t *testing.T) {
	d := fullDocument()
	texts := lineTexts(prescriptionLines(d))

	var medIndex, firstMed, secondMed int
	for i, text := range texts {
		switch text {
		case "Medications:":
			medIndex = i
		case "1. Amoxicillin (500mg)":
			firstMed = i
		case "2. Paracetamol (650mg)":
			secondMed = i
		}
	}
	require.Greater(t, firstMed, medIndex)
	require.Greater(t, secondMed, firstMed)
}

func TestCertificateLines(t *testing.T) {
	validUntil := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	d := &CertificateDocument{
		CertificateID:   "CERT1A2B3C4D",
		CertificateType: "Fitness Certificate",
		IssueDate:       time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		ValidUntil:      &validUntil,
		Content:         "The above patient is fit to resume work.",
		Diagnosis:       "Recovered from viral fever",
		Patient:         PatientBlock{FullName: "Jane Roe", Age: 34, Sex: "female"},
		Doctor:          DoctorBlock{FullName: "John Smith", RegistrationNumber: "REG-1001"},
	}

	texts := lineTexts(certificateLines(d))

	require.Contains(t, texts, "Name: Jane Roe")
	require.Contains(t, texts, "Diagnosis: Recovered from viral fever")
	require.Contains(t, texts, "The above patient is fit to resume work.")
	require.Contains(t, texts, "Valid Until: 01 Oct 2026")
	require.Contains(t, texts, "Issue Date: 28 Aug 2026")
}

func TestRenderPrescriptionProducesPDF(t *testing.T) {
	r := NewRenderer()

	var buf bytes.Buffer
	require.NoError(t, r.RenderPrescription(&buf, fullDocument()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	require.Greater(t, buf.Len(), 500)
}

func TestRenderCertificateProducesPDF(t *testing.T) {
	r := NewRenderer()

	d := &CertificateDocument{
		CertificateID:   "CERTAAAA0000",
		CertificateType: "Medical Certificate",
		IssueDate:       time.Now(),
		Patient:         PatientBlock{FullName: "Jane Roe", Age: 34, Sex: "female"},
		Doctor:          DoctorBlock{FullName: "John Smith", RegistrationNumber: "REG-1001"},
	}

	var buf bytes.Buffer
	require.NoError(t, r.RenderCertificate(&buf, d))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
