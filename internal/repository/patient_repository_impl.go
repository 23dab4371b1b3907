package repository

import (
	"context"
	"errors"

	"medtrack/internal/domain/entity"
	domainRepo "medtrack/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	db    *gorm.DB
	table string
}

func NewPatientRepository(db *gorm.DB, table string) domainRepo.PatientRepository {
	return &patientRepository{db: db, table: table}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	err := r.db.WithContext(ctx).Table(r.table).Create(patient).Error
	if isDuplicateKeyError(err, "email") {
		return domainRepo.ErrDuplicateEmail
	}
	return err
}

func (r *patientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Table(r.table).Where("email = ?", email).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
