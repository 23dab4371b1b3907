package service

import (
	"context"
	"sync"
	"time"

	"medtrack/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

const notificationTimeout = 5 * time.Second

// NotificationSink delivers registration events to one destination
type NotificationSink interface {
	Name() string
	Publish(ctx context.Context, event *entity.RegistrationEvent) error
}

// NotificationService publishes registration events best-effort. Publishing never
// blocks the caller and sink failures are only logged.
type NotificationService struct {
	log   *logrus.Logger
	sinks []NotificationSink
	wg    sync.WaitGroup
}

func NewNotificationService(log *logrus.Logger, sinks ...NotificationSink) *NotificationService {
	return &NotificationService{
		log:   log,
		sinks: sinks,
	}
}

func (s *NotificationService) PublishRegistrationEvent(event *entity.RegistrationEvent) {
	for _, sink := range s.sinks {
		s.wg.Add(1)
		go func(sink NotificationSink) {
			defer s.wg.Done()

			// Detached from the request so the publish outlives the redirect
			ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
			defer cancel()

			if err := sink.Publish(ctx, event); err != nil {
				s.log.WithField("sink", sink.Name()).Warnf("Failed to publish registration event: %+v", err)
				return
			}
			s.log.WithField("sink", sink.Name()).Debugf("Published registration event for %s", event.Email)
		}(sink)
	}
}

// Close waits for in-flight publishes
func (s *NotificationService) Close() {
	s.wg.Wait()
}
