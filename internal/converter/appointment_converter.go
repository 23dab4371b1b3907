package converter

import (
	"medtrack/internal/delivery/dto"
	"medtrack/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID.String(),
		DoctorID:    appointment.DoctorID.String(),
		DoctorName:  appointment.DoctorName,
		PatientID:   appointment.PatientID.String(),
		PatientName: appointment.PatientName,
		Specialty:   appointment.Specialty,
		Date:        appointment.Date,
		Time:        appointment.Time,
		Reason:      appointment.Reason,
		Status:      string(appointment.Status),
		Precautions: appointment.Precautions,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// TransitionsToResponses converts the status history of one appointment
func TransitionsToResponses(transitions []entity.AppointmentTransition) []dto.TransitionResponse {
	responses := make([]dto.TransitionResponse, len(transitions))
	for i, t := range transitions {
		responses[i] = dto.TransitionResponse{
			Action:     t.Action,
			ActorID:    t.ActorID.String(),
			FromStatus: string(t.FromStatus),
			ToStatus:   string(t.ToStatus),
			Metadata:   t.Metadata,
			CreatedAt:  t.CreatedAt,
		}
	}
	return responses
}
