package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medtrack/config"
	"medtrack/internal/domain/entity"
	"medtrack/internal/repository/memory"
	"medtrack/internal/service"
	"medtrack/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequireRole(t *testing.T) {
	patient := &entity.Identity{ID: uuid.New(), Role: entity.RolePatient}
	doctor := &entity.Identity{ID: uuid.New(), Role: entity.RoleDoctor}

	tests := []struct {
		name         string
		identity     *entity.Identity
		wantStatus   int
		wantLocation string
	}{
		{name: "anonymous", wantStatus: http.StatusSeeOther, wantLocation: "/"},
		{name: "wrong role", identity: patient, wantStatus: http.StatusSeeOther, wantLocation: "/"},
		{name: "doctor", identity: doctor, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/doctor", nil)
			if tt.identity != nil {
				req = req.WithContext(WithIdentity(req.Context(), tt.identity))
			}
			rec := httptest.NewRecorder()

			RequireDoctor(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}

func TestRequireSession_RedirectsToLogin(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireSession(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/patient/dashboard", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestLoadSession(t *testing.T) {
	log, _ := test.NewNullLogger()
	jwtService := jwt.NewJWTService(config.SessionConfig{Secret: "test-secret", TTL: time.Hour})
	sessions := service.NewSessionService(jwtService, memory.NewStore().Sessions(), log)
	m := NewSessionMiddleware(sessions, log)

	identity := &entity.Identity{ID: uuid.New(), Name: "Ann", Email: "ann@example.com", Role: entity.RolePatient}
	token, err := sessions.Create(context.Background(), identity)
	require.NoError(t, err)

	var seen *entity.Identity
	capture := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetIdentityFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	m.LoadSession(capture).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, identity, seen)

	seen = nil
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	m.LoadSession(capture).ServeHTTP(httptest.NewRecorder(), req)
	assert.Nil(t, seen)
}

func TestLoggingMiddleware_RecordsStatus(t *testing.T) {
	log, hook := test.NewNullLogger()
	m := NewLoggingMiddleware(log)

	teapot := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	m.Handle(teapot).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/check", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, http.MethodPost, entry.Data["method"])
	assert.Equal(t, "/check", entry.Data["path"])
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
}
