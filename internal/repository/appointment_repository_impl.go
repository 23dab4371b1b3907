package repository

import (
	"context"
	"errors"

	"medtrack/internal/domain/entity"
	domainRepo "medtrack/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db    *gorm.DB
	table string
}

func NewAppointmentRepository(db *gorm.DB, table string) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db, table: table}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Table(r.table).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByParticipant(ctx context.Context, participantID uuid.UUID, role string) ([]entity.Appointment, error) {
	column := "patient_id"
	if role == entity.RoleDoctor {
		column = "doctor_id"
	}

	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).Table(r.table).
		Where(column+" = ?", participantID).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id uuid.UUID, changes entity.AppointmentChanges) (int64, error) {
	result := r.db.WithContext(ctx).Table(r.table).
		Where("id = ?", id).
		Updates(changes.Fields())
	return result.RowsAffected, result.Error
}
