package converter

import (
	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                   doctor.ID,
		UserID:               doctor.UserID,
		FullName:             doctor.FullName,
		Qualification:        doctor.Qualification,
		Specialization:       doctor.Specialization,
		RegistrationNumber:   doctor.RegistrationNumber,
		ClinicName:           doctor.ClinicName,
		ClinicAddress:        doctor.ClinicAddress,
		ClinicPhone:          doctor.ClinicPhone,
		Email:                doctor.Email,
		Mobile:               doctor.Mobile,
		ExperienceYears:      doctor.ExperienceYears,
		ConsultationFee:      doctor.ConsultationFee,
		DigitalSignaturePath: doctor.DigitalSignaturePath,
		StampImagePath:       doctor.StampImagePath,
		LetterheadImagePath:  doctor.LetterheadImagePath,
	}
}
