package service

import (
	"context"
	"time"

	"medtrack/internal/domain/entity"
	"medtrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TransitionService keeps the append-only status history of appointments
type TransitionService interface {
	Record(ctx context.Context, appointmentID, actorID uuid.UUID, action string, from, to entity.AppointmentStatus, metadata entity.JSON) error
	History(ctx context.Context, appointmentID uuid.UUID) ([]entity.AppointmentTransition, error)
}

type transitionService struct {
	log            *logrus.Logger
	transitionRepo repository.AppointmentTransitionRepository
	now            func() time.Time
}

func NewTransitionService(log *logrus.Logger, transitionRepo repository.AppointmentTransitionRepository) TransitionService {
	return &transitionService{
		log:            log,
		transitionRepo: transitionRepo,
		now:            time.Now,
	}
}

func (s *transitionService) Record(ctx context.Context, appointmentID, actorID uuid.UUID, action string, from, to entity.AppointmentStatus, metadata entity.JSON) error {
	transition := entity.NewAppointmentTransition(appointmentID, actorID, action, from, to, metadata, s.now().UTC())

	if err := s.transitionRepo.Append(ctx, transition); err != nil {
		s.log.Warnf("Failed to record transition %s for appointment %s: %+v", action, appointmentID, err)
		return err
	}
	return nil
}

func (s *transitionService) History(ctx context.Context, appointmentID uuid.UUID) ([]entity.AppointmentTransition, error) {
	transitions, err := s.transitionRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		s.log.Warnf("Failed to load history for appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	return transitions, nil
}
