package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"medtrack/internal/converter"
	"medtrack/internal/delivery/dto"
	"medtrack/internal/domain/entity"
	"medtrack/internal/domain/repository"
	"medtrack/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPatientExists      = errors.New("patient exists")
	ErrDoctorExists       = errors.New("doctor exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error)
	FindUserByEmail(ctx context.Context, email, role string) (*entity.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, token string) error
}

type authUsecase struct {
	log                 *logrus.Logger
	patientRepo         repository.PatientRepository
	doctorRepo          repository.DoctorRepository
	sessionService      *service.SessionService
	notificationService *service.NotificationService
	now                 func() time.Time
}

func NewAuthUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	sessionService *service.SessionService,
	notificationService *service.NotificationService,
) AuthUsecase {
	return &authUsecase{
		log:                 log,
		patientRepo:         patientRepo,
		doctorRepo:          doctorRepo,
		sessionService:      sessionService,
		notificationService: notificationService,
		now:                 time.Now,
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	patient := &entity.Patient{
		ID:          uuid.New(),
		Name:        fullName(req.FirstName, req.LastName),
		Email:       req.Email,
		Password:    string(hashedPassword),
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Phone:       req.Phone,
		Address:     req.Address,
		CreatedAt:   u.now().UTC(),
	}

	// The store's unique index decides; there is no prior lookup to race against
	if err := u.patientRepo.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrPatientExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.notificationService.PublishRegistrationEvent(entity.NewPatientRegisteredEvent(patient, patient.CreatedAt))

	return converter.UserToResponse(patient.User()), nil
}

func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	doctor := &entity.Doctor{
		ID:             uuid.New(),
		Name:           fullName(req.FirstName, req.LastName),
		Email:          req.Email,
		Password:       string(hashedPassword),
		Specialization: req.Specialization,
		License:        req.License,
		Experience:     req.Experience,
		Hospital:       req.Hospital,
		Phone:          req.Phone,
		Address:        req.Address,
		CreatedAt:      u.now().UTC(),
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDoctorExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.notificationService.PublishRegistrationEvent(entity.NewDoctorRegisteredEvent(doctor, doctor.CreatedAt))

	return converter.UserToResponse(doctor.User()), nil
}

// FindUserByEmail looks up the account of the given role. It returns nil, nil when absent.
func (u *authUsecase) FindUserByEmail(ctx context.Context, email, role string) (*entity.User, error) {
	switch role {
	case entity.RolePatient:
		patient, err := u.patientRepo.FindByEmail(ctx, email)
		if err != nil || patient == nil {
			return nil, err
		}
		return patient.User(), nil
	case entity.RoleDoctor:
		doctor, err := u.doctorRepo.FindByEmail(ctx, email)
		if err != nil || doctor == nil {
			return nil, err
		}
		return doctor.User(), nil
	default:
		return nil, ErrInvalidRole
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := u.FindUserByEmail(ctx, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, ErrInvalidRole) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.sessionService.Create(ctx, user.Identity())
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return u.sessionService.Destroy(ctx, token)
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
