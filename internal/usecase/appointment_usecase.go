package usecase

import (
	"context"
	"errors"
	"time"

	"medtrack/internal/converter"
	"medtrack/internal/delivery/dto"
	"medtrack/internal/domain/entity"
	"medtrack/internal/domain/repository"
	"medtrack/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound      = errors.New("invalid doctor")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment belongs to another doctor")
	ErrInvalidTransition   = errors.New("transition not allowed from current status")
	ErrForbidden           = errors.New("identity not allowed")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, patient *entity.Identity, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	AddPrecautions(ctx context.Context, doctor *entity.Identity, appointmentID uuid.UUID, req *dto.PrecautionsRequest) error
	Reschedule(ctx context.Context, doctor *entity.Identity, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) error
	Cancel(ctx context.Context, doctor *entity.Identity, appointmentID uuid.UUID) error
	Confirm(ctx context.Context, doctor *entity.Identity, appointmentID uuid.UUID) error
	History(ctx context.Context, doctor *entity.Identity, appointmentID uuid.UUID) (*dto.TransitionListResponse, error)
}

type appointmentUsecase struct {
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	doctorRepo        repository.DoctorRepository
	transitionService service.TransitionService
	now               func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	transitionService service.TransitionService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:               log,
		appointmentRepo:   appointmentRepo,
		doctorRepo:        doctorRepo,
		transitionService: transitionService,
		now:               time.Now,
	}
}

func (u *appointmentUsecase) BookAppointment(ctx context.Context, patient *entity.Identity, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if !patient.IsPatient() {
		return nil, ErrForbidden
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := entity.NewAppointment(doctor, patient, req.Date, req.Time, req.Reason, u.now().UTC())
	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	// History is best-effort; the booking itself already succeeded
	_ = u.transitionService.Record(ctx, appointment.ID, patient.ID, entity.AppointmentActionBook,
		"", entity.AppointmentStatusScheduled, entity.JSON{"date": req.Date, "time": req.Time})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) AddPrecautions(ctx context.Context, doctor *entity.Identity, appointmentID uuid.UUID, req *dto.PrecautionsRequest) error {
	status := entity.AppointmentStatusCompleted
	changes := entity.AppointmentChanges{
		Status:      &status,
		Precautions: &req.Precautions,
	}
	return u.transition(ctx, doctor, appointmentID, entity.AppointmentActionComplete, changes, nil, nil)
}

func (u *appointmentUsecase) Reschedule(ctx context.Context, doctor *entity.Identity, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) error {
	status := entity.AppointmentStatusRescheduled
	changes := entity.AppointmentChanges{
		Date:   &req.Date,
		Time:   &req.Time,
		Status: &status,
	}
	metadata := entity.JSON{"date": req.Date, "time": req.Time}
	return u.transition(ctx, doctor, appointmentID, entity.AppointmentActionReschedule, changes, metadata, nil)
}

func (u *appointmentUsecase) Cancel(ctx context.Context, doctor *entity.Identity, appointmentID uuid.UUID) error {
	status := entity.AppointmentStatusCancelled
	changes := entity.AppointmentChanges{Status: &status}
	return u.transition(ctx, doctor, appointmentID, entity.AppointmentActionCancel, changes, nil, nil)
}

func (u *appointmentUsecase) Confirm(ctx context.Context, doctor *entity.Identity, appointmentID uuid.UUID) error {
	status := entity.AppointmentStatusConfirmed
	changes := entity.AppointmentChanges{Status: &status}
	return u.transition(ctx, doctor, appointmentID, entity.AppointmentActionConfirm, changes, nil, func(a *entity.Appointment) bool {
		return a.CanConfirm()
	})
}

func (u *appointmentUsecase) History(ctx context.Context, doctor *entity.Identity, appointmentID uuid.UUID) (*dto.TransitionListResponse, error) {
	if _, err := u.findOwned(ctx, doctor, appointmentID); err != nil {
		return nil, err
	}

	transitions, err := u.transitionService.History(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	return &dto.TransitionListResponse{
		AppointmentID: appointmentID.String(),
		Transitions:   converter.TransitionsToResponses(transitions),
		Total:         len(transitions),
	}, nil
}

// transition applies changes to an appointment owned by doctor and appends the history entry.
// allowed, when set, is checked against the stored appointment before writing.
func (u *appointmentUsecase) transition(
	ctx context.Context,
	doctor *entity.Identity,
	appointmentID uuid.UUID,
	action string,
	changes entity.AppointmentChanges,
	metadata entity.JSON,
	allowed func(*entity.Appointment) bool,
) error {
	appointment, err := u.findOwned(ctx, doctor, appointmentID)
	if err != nil {
		return err
	}
	if allowed != nil && !allowed(appointment) {
		return ErrInvalidTransition
	}

	changes.UpdatedAt = u.now().UTC()
	affected, err := u.appointmentRepo.Update(ctx, appointmentID, changes)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	_ = u.transitionService.Record(ctx, appointmentID, doctor.ID, action, appointment.Status, *changes.Status, metadata)
	return nil
}

func (u *appointmentUsecase) findOwned(ctx context.Context, doctor *entity.Identity, appointmentID uuid.UUID) (*entity.Appointment, error) {
	if !doctor.IsDoctor() {
		return nil, ErrForbidden
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != doctor.ID {
		return nil, ErrAppointmentNotOwned
	}
	return appointment, nil
}
