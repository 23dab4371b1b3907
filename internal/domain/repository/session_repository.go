package repository

import (
	"context"
	"time"

	"medtrack/internal/domain/entity"
)

type SessionRepository interface {
	Save(ctx context.Context, tokenID string, identity *entity.Identity, ttl time.Duration) error
	// Find returns nil, nil for unknown or expired sessions
	Find(ctx context.Context, tokenID string) (*entity.Identity, error)
	Delete(ctx context.Context, tokenID string) error
}
