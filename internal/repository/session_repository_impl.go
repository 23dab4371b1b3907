package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medtrack/internal/domain/entity"
	domainRepo "medtrack/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type sessionRepository struct {
	redisClient *redis.Client
}

func NewSessionRepository(redisClient *redis.Client) domainRepo.SessionRepository {
	return &sessionRepository{redisClient: redisClient}
}

func sessionKey(tokenID string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, tokenID)
}

func (r *sessionRepository) Save(ctx context.Context, tokenID string, identity *entity.Identity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return r.redisClient.Set(ctx, sessionKey(tokenID), payload, ttl).Err()
}

func (r *sessionRepository) Find(ctx context.Context, tokenID string) (*entity.Identity, error) {
	payload, err := r.redisClient.Get(ctx, sessionKey(tokenID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var identity entity.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *sessionRepository) Delete(ctx context.Context, tokenID string) error {
	return r.redisClient.Del(ctx, sessionKey(tokenID)).Err()
}
