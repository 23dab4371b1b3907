package repository

import (
	"context"
	"errors"

	"medtrack/internal/domain/entity"
	domainRepo "medtrack/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db    *gorm.DB
	table string
}

func NewDoctorRepository(db *gorm.DB, table string) domainRepo.DoctorRepository {
	return &doctorRepository{db: db, table: table}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	err := r.db.WithContext(ctx).Table(r.table).Create(doctor).Error
	if isDuplicateKeyError(err, "email") {
		return domainRepo.ErrDuplicateEmail
	}
	return err
}

func (r *doctorRepository) FindByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).Table(r.table).Order("name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) findOne(ctx context.Context, query string, arg interface{}) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Table(r.table).Where(query, arg).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}
