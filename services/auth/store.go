package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"divinespark/models"
)

const viewerSessionPrefix = "viewerSession:"

// SessionStore persists viewer sessions. The token and the derived role flag
// live and die together: a logout or an authentication failure clears both.
type SessionStore interface {
	Save(ctx context.Context, session models.ViewerSession) error
	Get(ctx context.Context, id string) (*models.ViewerSession, error)
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps viewer sessions in Redis with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: 24 * time.Hour}
}

func (s *RedisSessionStore) Save(ctx context.Context, session models.ViewerSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal viewer session: %w", err)
	}
	if err := s.Client.Set(ctx, viewerSessionPrefix+session.ID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save viewer session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.ViewerSession, error) {
	data, err := s.Client.Get(ctx, viewerSessionPrefix+id).Result()
	if err != nil {
		return nil, err
	}
	var session models.ViewerSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal viewer session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, viewerSessionPrefix+id).Err()
}
