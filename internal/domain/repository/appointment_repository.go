package repository

import (
	"context"

	"medtrack/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// FindByParticipant lists appointments by doctor_id or patient_id depending on role
	FindByParticipant(ctx context.Context, participantID uuid.UUID, role string) ([]entity.Appointment, error)
	// Update merges changes into the appointment and returns the affected count; a missing id affects 0
	Update(ctx context.Context, id uuid.UUID, changes entity.AppointmentChanges) (int64, error)
}
