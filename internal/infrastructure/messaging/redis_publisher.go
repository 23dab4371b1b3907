package messaging

import (
	"context"
	"encoding/json"

	"medtrack/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

// topicClient is the slice of *redis.Client the publisher needs
type topicClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisTopicPublisher fans registration events out to the subscribers of a Redis channel
type RedisTopicPublisher struct {
	client topicClient
	topic  string
}

func NewRedisTopicPublisher(client topicClient, topic string) *RedisTopicPublisher {
	return &RedisTopicPublisher{client: client, topic: topic}
}

func (p *RedisTopicPublisher) Name() string {
	return "redis:" + p.topic
}

func (p *RedisTopicPublisher) Publish(ctx context.Context, event *entity.RegistrationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.topic, payload).Err()
}
