package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"medtrack/internal/domain/entity"
	"medtrack/internal/service"
	"medtrack/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
	TokenKey    contextKey = "session_token"
)

// SessionCookieName is the cookie holding the signed session token
const SessionCookieName = "medtrack_session"

type SessionMiddleware struct {
	sessionService *service.SessionService
	log            *logrus.Logger
}

func NewSessionMiddleware(sessionService *service.SessionService, log *logrus.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessionService: sessionService,
		log:            log,
	}
}

// LoadSession attaches the identity behind the session cookie to the request context.
// Requests without a valid session continue anonymously.
func (m *SessionMiddleware) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := m.sessionService.Resolve(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, service.ErrNoSession) {
				m.log.Warnf("Failed to resolve session: %+v", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := WithIdentity(r.Context(), identity)
		ctx = context.WithValue(ctx, TokenKey, cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession redirects anonymous requests to the login page
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetIdentityFromContext(r.Context()); !ok {
			response.Redirect(w, r, "/login")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithIdentity returns ctx carrying identity
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// GetIdentityFromContext extracts the session identity from context
func GetIdentityFromContext(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*entity.Identity)
	return identity, ok && identity != nil
}

// GetTokenFromContext extracts the raw session token from context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}

func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
