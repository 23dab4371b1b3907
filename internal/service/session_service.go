package service

import (
	"context"
	"errors"

	"medtrack/internal/domain/entity"
	"medtrack/internal/domain/repository"
	"medtrack/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var ErrNoSession = errors.New("no active session")

// SessionService binds a signed cookie token to an identity held in the session store
type SessionService struct {
	jwtService  *jwt.JWTService
	sessionRepo repository.SessionRepository
	log         *logrus.Logger
}

func NewSessionService(jwtService *jwt.JWTService, sessionRepo repository.SessionRepository, log *logrus.Logger) *SessionService {
	return &SessionService{
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

// Create stores identity and returns the token to hand to the client
func (s *SessionService) Create(ctx context.Context, identity *entity.Identity) (string, error) {
	token, tokenID, err := s.jwtService.GenerateSessionToken(identity.ID, identity.Role)
	if err != nil {
		s.log.Warnf("Failed to generate session token: %+v", err)
		return "", err
	}

	if err := s.sessionRepo.Save(ctx, tokenID, identity, s.jwtService.GetSessionExpiry()); err != nil {
		s.log.Warnf("Failed to store session: %+v", err)
		return "", err
	}

	return token, nil
}

// Resolve returns the identity behind token, or ErrNoSession when the token is
// invalid, expired, or no longer stored.
func (s *SessionService) Resolve(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrNoSession
	}

	identity, err := s.sessionRepo.Find(ctx, claims.TokenID)
	if err != nil {
		s.log.Warnf("Failed to load session %s: %+v", claims.TokenID, err)
		return nil, err
	}
	if identity == nil || identity.ID != claims.UserID || identity.Role != claims.Role {
		return nil, ErrNoSession
	}

	return identity, nil
}

// Destroy removes the session behind token. Unknown tokens are ignored.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}

	if err := s.sessionRepo.Delete(ctx, claims.TokenID); err != nil {
		s.log.Warnf("Failed to delete session %s: %+v", claims.TokenID, err)
		return err
	}
	return nil
}
