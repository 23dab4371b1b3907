package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"medtrack/config"
	"medtrack/internal/delivery/dto"
	"medtrack/internal/delivery/http/handler"
	"medtrack/internal/delivery/http/middleware"
	"medtrack/internal/delivery/http/view"
	"medtrack/internal/domain/entity"
	"medtrack/internal/repository/memory"
	"medtrack/internal/service"
	"medtrack/internal/usecase"
	"medtrack/pkg/jwt"
	"medtrack/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router *mux.Router
	store  *memory.Store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := memory.NewStore()

	sessionCfg := config.SessionConfig{Secret: "test-secret", TTL: time.Hour}
	sessions := service.NewSessionService(jwt.NewJWTService(sessionCfg), store.Sessions(), log)
	notify := service.NewNotificationService(log)
	transitions := service.NewTransitionService(log, store.Transitions())
	t.Cleanup(notify.Close)

	authUsecase := usecase.NewAuthUsecase(log, store.Patients(), store.Doctors(), sessions, notify)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, store.Appointments(), store.Doctors(), transitions)
	dashboardUsecase := usecase.NewDashboardUsecase(log, store.Patients(), store.Doctors(), store.Appointments())

	renderer, err := view.NewRenderer(log)
	require.NoError(t, err)
	v := validator.NewValidator()

	router := NewRouter(
		handler.NewPageHandler(renderer),
		handler.NewAuthHandler(authUsecase, v, renderer, log, sessionCfg.TTL, false),
		handler.NewPatientHandler(dashboardUsecase, appointmentUsecase, v, renderer, log),
		handler.NewDoctorHandler(dashboardUsecase, appointmentUsecase, v, renderer, log),
		middleware.NewSessionMiddleware(sessions, log),
		middleware.NewLoggingMiddleware(log),
	)

	return &testApp{router: router.Setup(), store: store}
}

func (a *testApp) do(method, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) login(t *testing.T, email, role string) *http.Cookie {
	t.Helper()
	rec := a.do(http.MethodPost, "/check", url.Values{
		"email":    {email},
		"password": {"secret1"},
		"role":     {role},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/"+role, rec.Header().Get("Location"))

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatalf("no session cookie set")
	return nil
}

func patientForm(email string) url.Values {
	return url.Values{
		"firstName": {"Pat"},
		"lastName":  {"Ient"},
		"dob":       {"1990-04-12"},
		"gender":    {"Female"},
		"email":     {email},
		"password":  {"secret1"},
	}
}

func doctorForm(email string) url.Values {
	return url.Values{
		"firstName":      {"Doc"},
		"lastName":       {"Tor"},
		"specialization": {"Cardiology"},
		"hospital":       {"General"},
		"email":          {email},
		"password":       {"secret1"},
	}
}

func TestRouter_RegisterLoginBookDoctorDashboard(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	rec := app.do(http.MethodPost, "/register/patient", patientForm("p@example.com"), nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = app.do(http.MethodPost, "/register/doctor", doctorForm("d@example.com"), nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	doctor, err := app.store.Doctors().FindByEmail(ctx, "d@example.com")
	require.NoError(t, err)
	require.NotNil(t, doctor)

	patientCookie := app.login(t, "p@example.com", entity.RolePatient)

	rec = app.do(http.MethodGet, "/patient", nil, patientCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), doctor.ID.String())

	rec = app.do(http.MethodPost, "/patient/book", url.Values{
		"doctorId": {doctor.ID.String()},
		"date":     {"2024-06-01"},
		"time":     {"10:00"},
		"reason":   {"Chest pain"},
	}, patientCookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/patient", rec.Header().Get("Location"))

	doctorCookie := app.login(t, "d@example.com", entity.RoleDoctor)

	rec = app.do(http.MethodGet, "/doctor", nil, doctorCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Pat Ient")
	assert.Contains(t, body, "Scheduled")
	assert.Contains(t, body, "2024-06-01")
}

func TestRouter_DuplicateRegistration(t *testing.T) {
	app := newTestApp(t)

	require.Equal(t, http.StatusSeeOther, app.do(http.MethodPost, "/register/patient", patientForm("p@example.com"), nil).Code)
	rec := app.do(http.MethodPost, "/register/patient", patientForm("p@example.com"), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Patient exists", rec.Body.String())

	require.Equal(t, http.StatusSeeOther, app.do(http.MethodPost, "/register/doctor", doctorForm("d@example.com"), nil).Code)
	rec = app.do(http.MethodPost, "/register/doctor", doctorForm("d@example.com"), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Doctor exists", rec.Body.String())
}

func TestRouter_InvalidRegistrationForm(t *testing.T) {
	app := newTestApp(t)

	form := patientForm("not-an-email")
	rec := app.do(http.MethodPost, "/register/patient", form, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email must be a valid email address")
}

func TestRouter_FailedLoginRerendersForm(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusSeeOther, app.do(http.MethodPost, "/register/patient", patientForm("p@example.com"), nil).Code)

	rec := app.do(http.MethodPost, "/check", url.Values{
		"email":    {"p@example.com"},
		"password": {"wrong-password"},
		"role":     {entity.RolePatient},
	}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	assert.Empty(t, rec.Result().Cookies())
}

func TestRouter_Guards(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusSeeOther, app.do(http.MethodPost, "/register/patient", patientForm("p@example.com"), nil).Code)
	patientCookie := app.login(t, "p@example.com", entity.RolePatient)

	tests := []struct {
		name         string
		method       string
		path         string
		cookie       *http.Cookie
		wantLocation string
	}{
		{name: "anonymous doctor dashboard", method: http.MethodGet, path: "/doctor", wantLocation: "/"},
		{name: "patient on doctor dashboard", method: http.MethodGet, path: "/doctor", cookie: patientCookie, wantLocation: "/"},
		{name: "patient cancels", method: http.MethodPost, path: "/doctor/appointment/" + "00000000-0000-0000-0000-000000000000" + "/cancel", cookie: patientCookie, wantLocation: "/"},
		{name: "anonymous patient dashboard", method: http.MethodGet, path: "/patient", wantLocation: "/"},
		{name: "anonymous booking", method: http.MethodPost, path: "/patient/book", wantLocation: "/"},
		{name: "anonymous profile", method: http.MethodGet, path: "/patient/dashboard", wantLocation: "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(tt.method, tt.path, nil, tt.cookie)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}

func TestRouter_LifecycleAndHistory(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.Equal(t, http.StatusSeeOther, app.do(http.MethodPost, "/register/patient", patientForm("p@example.com"), nil).Code)
	require.Equal(t, http.StatusSeeOther, app.do(http.MethodPost, "/register/doctor", doctorForm("d@example.com"), nil).Code)
	require.Equal(t, http.StatusSeeOther, app.do(http.MethodPost, "/register/doctor", doctorForm("other@example.com"), nil).Code)

	doctor, err := app.store.Doctors().FindByEmail(ctx, "d@example.com")
	require.NoError(t, err)

	patientCookie := app.login(t, "p@example.com", entity.RolePatient)
	require.Equal(t, http.StatusSeeOther, app.do(http.MethodPost, "/patient/book", url.Values{
		"doctorId": {doctor.ID.String()},
		"date":     {"2024-06-01"},
		"time":     {"10:00"},
	}, patientCookie).Code)

	appointments, err := app.store.Appointments().FindByParticipant(ctx, doctor.ID, entity.RoleDoctor)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	base := "/doctor/appointment/" + appointments[0].ID.String()

	// Another doctor's action is a silent no-op
	otherCookie := app.login(t, "other@example.com", entity.RoleDoctor)
	rec := app.do(http.MethodPost, base+"/cancel", nil, otherCookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/doctor", rec.Header().Get("Location"))

	doctorCookie := app.login(t, "d@example.com", entity.RoleDoctor)
	rec = app.do(http.MethodPost, base+"/confirm", url.Values{}, doctorCookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/doctor", rec.Header().Get("Location"))

	rec = app.do(http.MethodPost, base+"/precautions", url.Values{"precautions": {"Rest and fluids"}}, doctorCookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	stored, err := app.store.Appointments().FindByID(ctx, appointments[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCompleted, stored.Status)
	assert.Equal(t, "Rest and fluids", stored.Precautions)

	rec = app.do(http.MethodGet, base+"/history", nil, doctorCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var history dto.TransitionListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Equal(t, 3, history.Total)
	assert.Equal(t, entity.AppointmentActionComplete, history.Transitions[2].Action)

	rec = app.do(http.MethodGet, base+"/history", nil, otherCookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(http.MethodPost, "/doctor/appointment/not-an-id/cancel", nil, doctorCookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/doctor", rec.Header().Get("Location"))
}

func TestRouter_BookUnknownDoctor(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusSeeOther, app.do(http.MethodPost, "/register/patient", patientForm("p@example.com"), nil).Code)
	patientCookie := app.login(t, "p@example.com", entity.RolePatient)

	rec := app.do(http.MethodPost, "/patient/book", url.Values{
		"doctorId": {"00000000-0000-0000-0000-000000000001"},
		"date":     {"2024-06-01"},
		"time":     {"10:00"},
	}, patientCookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid doctor", rec.Body.String())
}

func TestRouter_ProfileAndLogout(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusSeeOther, app.do(http.MethodPost, "/register/patient", patientForm("p@example.com"), nil).Code)
	patientCookie := app.login(t, "p@example.com", entity.RolePatient)

	rec := app.do(http.MethodGet, "/patient/dashboard", nil, patientCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "p@example.com")
	assert.Contains(t, rec.Body.String(), "1990-04-12")

	rec = app.do(http.MethodGet, "/logout", nil, patientCookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	// The server-side session is gone even if the client replays the cookie
	rec = app.do(http.MethodGet, "/patient", nil, patientCookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRouter_PublicPagesAndHealth(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/", "/about", "/contactus", "/register", "/login"} {
		rec := app.do(http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "MedTrack", path)
	}

	rec := app.do(http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
