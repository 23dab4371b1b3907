package repository

import (
	"context"

	"medtrack/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByEmail(ctx context.Context, email string) (*entity.Patient, error)
}
