package repository

import (
	"context"

	"medtrack/internal/domain/entity"
	domainRepo "medtrack/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentTransitionRepository struct {
	db    *gorm.DB
	table string
}

func NewAppointmentTransitionRepository(db *gorm.DB, table string) domainRepo.AppointmentTransitionRepository {
	return &appointmentTransitionRepository{db: db, table: table}
}

func (r *appointmentTransitionRepository) Append(ctx context.Context, transition *entity.AppointmentTransition) error {
	return r.db.WithContext(ctx).Table(r.table).Create(transition).Error
}

func (r *appointmentTransitionRepository) FindByAppointmentID(ctx context.Context, appointmentID uuid.UUID) ([]entity.AppointmentTransition, error) {
	var transitions []entity.AppointmentTransition
	err := r.db.WithContext(ctx).Table(r.table).
		Where("appointment_id = ?", appointmentID).
		Order("created_at ASC").
		Find(&transitions).Error
	if err != nil {
		return nil, err
	}
	return transitions, nil
}
