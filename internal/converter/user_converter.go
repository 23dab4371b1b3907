package converter

import (
	"medtrack/internal/delivery/dto"
	"medtrack/internal/domain/entity"
)

// UserToResponse converts the credential view of an account to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// DoctorsToOptions lists doctors for the booking form
func DoctorsToOptions(doctors []entity.Doctor) []dto.DoctorOption {
	options := make([]dto.DoctorOption, len(doctors))
	for i, d := range doctors {
		options[i] = dto.DoctorOption{
			ID:             d.ID.String(),
			Name:           d.Name,
			Specialization: d.Specialization,
			Hospital:       d.Hospital,
		}
	}
	return options
}

// PatientToProfile converts a Patient entity to the profile page DTO
func PatientToProfile(patient *entity.Patient) *dto.PatientProfileResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientProfileResponse{
		Name:    patient.Name,
		Email:   patient.Email,
		Phone:   patient.Phone,
		Address: patient.Address,
		Age:     patient.DateOfBirth,
		Gender:  patient.Gender,
	}
}
