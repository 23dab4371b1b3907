package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"medtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	name string
	err  error

	mu     sync.Mutex
	events []*entity.RegistrationEvent
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Publish(_ context.Context, event *entity.RegistrationEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return s.err
}

func TestNotificationService_FailingSinkIsLoggedAndSwallowed(t *testing.T) {
	log, hook := test.NewNullLogger()
	ok := &recordingSink{name: "ok"}
	broken := &recordingSink{name: "broken", err: errors.New("topic missing")}
	svc := NewNotificationService(log, ok, broken)

	patient := &entity.Patient{ID: uuid.New(), Name: "Leslie Knope", Email: "leslie@example.com"}
	svc.PublishRegistrationEvent(entity.NewPatientRegisteredEvent(patient, time.Now()))
	svc.Close()

	require.Len(t, ok.events, 1)
	assert.Equal(t, "New patient registered: Leslie Knope (leslie@example.com)", ok.events[0].Message)
	require.Len(t, broken.events, 1)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "broken", entry.Data["sink"])
}

func TestNotificationService_NoSinksIsNoop(t *testing.T) {
	log, hook := test.NewNullLogger()
	svc := NewNotificationService(log)

	svc.PublishRegistrationEvent(&entity.RegistrationEvent{})
	svc.Close()

	assert.Empty(t, hook.AllEntries())
}
