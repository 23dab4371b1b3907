package repository

import (
	"context"

	"medtrack/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentTransitionRepository interface {
	Append(ctx context.Context, transition *entity.AppointmentTransition) error
	FindByAppointmentID(ctx context.Context, appointmentID uuid.UUID) ([]entity.AppointmentTransition, error)
}
