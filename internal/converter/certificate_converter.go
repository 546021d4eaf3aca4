package converter

import (
	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/domain/entity"
	"rx-prescription-api/internal/pdf"
)

// CertificateToResponse converts a joined Certificate entity to its DTO
func CertificateToResponse(certificate *entity.Certificate) *dto.CertificateResponse {
	if certificate == nil {
		return nil
	}

	return &dto.CertificateResponse{
		ID:              certificate.ID,
		CertificateID:   certificate.CertificateID,
		Patient:         PatientToResponse(&certificate.Patient),
		Doctor:          DoctorToResponse(&certificate.Doctor),
		CertificateType: certificate.CertificateType,
		IssueDate:       certificate.IssueDate,
		ValidUntil:      certificate.ValidUntil,
		Content:         certificate.Content,
		Diagnosis:       certificate.Diagnosis,
		Recommendations: certificate.Recommendations,
		Restrictions:    certificate.Restrictions,
	}
}

// CertificateToDocument flattens a joined Certificate into the renderer's view
func CertificateToDocument(certificate *entity.Certificate) *pdf.CertificateDocument {
	if certificate == nil {
		return nil
	}

	return &pdf.CertificateDocument{
		CertificateID:   certificate.CertificateID,
		CertificateType: certificate.CertificateType,
		IssueDate:       certificate.IssueDate,
		ValidUntil:      certificate.ValidUntil,
		Content:         certificate.Content,
		Diagnosis:       certificate.Diagnosis,
		Recommendations: certificate.Recommendations,
		Restrictions:    certificate.Restrictions,
		Patient:         patientBlock(&certificate.Patient),
		Doctor:          doctorBlock(&certificate.Doctor),
	}
}
