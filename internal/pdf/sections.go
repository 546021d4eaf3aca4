package pdf

import "fmt"

// lineStyle picks the font treatment a docLine is emitted with
type lineStyle int

const (
	styleHeading lineStyle = iota // 14pt underlined
	styleSection                  // 12pt underlined
	styleBody                     // 10pt
	styleIndent                   // 10pt, indented under a numbered item
	styleSpacer                   // vertical gap, no text
)

// docLine is one flow element of the rendered body. The renderer emits the
// slice strictly in order; pagination is left to the document engine.
type docLine struct {
	style lineStyle
	text  string
}

const dateLayout = "02 Jan 2006"

// prescriptionSections lists the body builders in display order. Each builder
// owns its own presence checks and returns nothing when its data is absent,
// which keeps the what-renders-when contract testable without touching the
// PDF engine.
var prescriptionSections = []func(d *PrescriptionDocument) []docLine{
	prescriptionPatientBlock,
	prescriptionNarrative,
	prescriptionMedications,
	prescriptionInvestigations,
	prescriptionClosing,
}

func prescriptionLines(d *PrescriptionDocument) []docLine {
	var lines []docLine
	for _, section := range prescriptionSections {
		lines = append(lines, section(d)...)
	}
	return lines
}

func prescriptionPatientBlock(d *PrescriptionDocument) []docLine {
	mobile := d.Patient.Mobile
	if mobile == "" {
		mobile = "Not provided"
	}
	return []docLine{
		{styleHeading, "PRESCRIPTION"},
		{styleSpacer, ""},
		{styleBody, "Patient Name: " + d.Patient.FullName},
		{styleBody, fmt.Sprintf("Age: %d | Sex: %s", d.Patient.Age, d.Patient.Sex)},
		{styleBody, "Mobile: " + mobile},
		{styleBody, "Date: " + d.CreatedAt.Format(dateLayout)},
		{styleBody, "Prescription ID: " + d.PrescriptionID},
		{styleSpacer, ""},
	}
}

func prescriptionNarrative(d *PrescriptionDocument) []docLine {
	var lines []docLine
	labeled := []struct {
		label string
		value string
	}{
		{"Chief Complaint", d.ChiefComplaint},
		{"History", d.HistoryOfPresentIllness},
		{"Past Medical History", d.PastMedicalHistory},
		{"Past Surgical History", d.PastSurgicalHistory},
	}
	for _, field := range labeled {
		if field.value != "" {
			lines = append(lines, docLine{styleBody, field.label + ": " + field.value})
		}
	}
	if d.Diagnosis != "" {
		lines = append(lines,
			docLine{styleSpacer, ""},
			docLine{styleBody, "Diagnosis: " + d.Diagnosis},
		)
	}
	return lines
}

func prescriptionMedications(d *PrescriptionDocument) []docLine {
	if len(d.Medicines) == 0 {
		return nil
	}
	lines := []docLine{
		{styleSpacer, ""},
		{styleSection, "Medications:"},
	}
	for i, med := range d.Medicines {
		lines = append(lines,
			docLine{styleBody, fmt.Sprintf("%d. %s (%s)", i+1, med.Name, med.Strength)},
			docLine{styleIndent, fmt.Sprintf("Dosage: %s, Frequency: %s, Duration: %s", med.Dosage, med.Frequency, med.Duration)},
		)
		if med.Instructions != "" {
			lines = append(lines, docLine{styleIndent, "Instructions: " + med.Instructions})
		}
	}
	return lines
}

func prescriptionInvestigations(d *PrescriptionDocument) []docLine {
	if len(d.Investigations) == 0 {
		return nil
	}
	lines := []docLine{
		{styleSpacer, ""},
		{styleSection, "Investigations Advised:"},
	}
	for i, inv := range d.Investigations {
		lines = append(lines, docLine{styleBody, fmt.Sprintf("%d. %s", i+1, inv.Name)})
		if inv.Notes != "" {
			lines = append(lines, docLine{styleIndent, "Notes: " + inv.Notes})
		}
	}
	return lines
}

func prescriptionClosing(d *PrescriptionDocument) []docLine {
	var lines []docLine
	if d.Advice != "" {
		lines = append(lines,
			docLine{styleSpacer, ""},
			docLine{styleBody, "Advice: " + d.Advice},
		)
	}
	if d.FollowUpDate != nil {
		lines = append(lines,
			docLine{styleSpacer, ""},
			docLine{styleBody, "Follow-up Date: " + d.FollowUpDate.Format(dateLayout)},
		)
	}
	if d.ConsentObtained {
		lines = append(lines,
			docLine{styleSpacer, ""},
			docLine{styleBody, "Consent: The patient was informed about complete treatment and prognosis of the illness."},
			docLine{styleBody, "In case the complaint aggravates in absence of the doctor, please admit the patient."},
		)
	}
	return lines
}

func certificateLines(d *CertificateDocument) []docLine {
	lines := []docLine{
		{styleBody, "Name: " + d.Patient.FullName},
		{styleBody, fmt.Sprintf("Age: %d | Sex: %s", d.Patient.Age, d.Patient.Sex)},
		{styleSpacer, ""},
	}
	if d.Diagnosis != "" {
		lines = append(lines, docLine{styleBody, "Diagnosis: " + d.Diagnosis})
	}
	if d.Content != "" {
		lines = append(lines,
			docLine{styleSpacer, ""},
			docLine{styleBody, d.Content},
		)
	}
	if d.Recommendations != "" {
		lines = append(lines,
			docLine{styleSpacer, ""},
			docLine{styleBody, "Recommendations: " + d.Recommendations},
		)
	}
	if d.Restrictions != "" {
		lines = append(lines,
			docLine{styleSpacer, ""},
			docLine{styleBody, "Restrictions: " + d.Restrictions},
		)
	}
	if d.ValidUntil != nil {
		lines = append(lines,
			docLine{styleSpacer, ""},
			docLine{styleBody, "Valid Until: " + d.ValidUntil.Format(dateLayout)},
		)
	}
	lines = append(lines, docLine{styleBody, "Issue Date: " + d.IssueDate.Format(dateLayout)})
	return lines
}
