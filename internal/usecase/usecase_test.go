package usecase

import (
	"context"
	"testing"
	"time"

	"medtrack/config"
	"medtrack/internal/delivery/dto"
	"medtrack/internal/domain/entity"
	"medtrack/internal/repository/memory"
	"medtrack/internal/service"
	"medtrack/pkg/jwt"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store        *memory.Store
	notify       *service.NotificationService
	auth         AuthUsecase
	appointments AppointmentUsecase
	dashboards   DashboardUsecase
}

func newFixture(t *testing.T, sinks ...service.NotificationSink) *fixture {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := memory.NewStore()

	jwtService := jwt.NewJWTService(config.SessionConfig{Secret: "test-secret", TTL: time.Hour})
	sessions := service.NewSessionService(jwtService, store.Sessions(), log)
	notify := service.NewNotificationService(log, sinks...)
	transitions := service.NewTransitionService(log, store.Transitions())

	auth := NewAuthUsecase(log, store.Patients(), store.Doctors(), sessions, notify).(*authUsecase)
	auth.now = func() time.Time { return fixedNow }
	appointments := NewAppointmentUsecase(log, store.Appointments(), store.Doctors(), transitions).(*appointmentUsecase)
	appointments.now = func() time.Time { return fixedNow }
	dashboards := NewDashboardUsecase(log, store.Patients(), store.Doctors(), store.Appointments()).(*dashboardUsecase)
	dashboards.now = func() time.Time { return fixedNow }

	t.Cleanup(notify.Close)

	return &fixture{
		store:        store,
		notify:       notify,
		auth:         auth,
		appointments: appointments,
		dashboards:   dashboards,
	}
}

func (f *fixture) registerPatient(t *testing.T, email string) *entity.Identity {
	t.Helper()
	_, err := f.auth.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		FirstName: "Pat",
		LastName:  "Ient",
		Email:     email,
		Password:  "secret1",
	})
	require.NoError(t, err)

	user, err := f.auth.FindUserByEmail(context.Background(), email, entity.RolePatient)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user.Identity()
}

func (f *fixture) registerDoctor(t *testing.T, email string) *entity.Identity {
	t.Helper()
	_, err := f.auth.RegisterDoctor(context.Background(), &dto.RegisterDoctorRequest{
		FirstName:      "Doc",
		LastName:       "Tor",
		Specialization: "Cardiology",
		Email:          email,
		Password:       "secret1",
	})
	require.NoError(t, err)

	user, err := f.auth.FindUserByEmail(context.Background(), email, entity.RoleDoctor)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user.Identity()
}

func (f *fixture) book(t *testing.T, patient, doctor *entity.Identity, date, clock string) *dto.AppointmentResponse {
	t.Helper()
	appointment, err := f.appointments.BookAppointment(context.Background(), patient, &dto.BookAppointmentRequest{
		DoctorID: doctor.ID.String(),
		Date:     date,
		Time:     clock,
		Reason:   "checkup",
	})
	require.NoError(t, err)
	return appointment
}
