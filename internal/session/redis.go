package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

const sessionKeyPrefix = "concierge:session:"

// Redis is the Store used when multiple instances serve the same
// conversation.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects and pings; a dead Redis fails startup rather than the
// first request.
func NewRedis(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &Redis{client: client, ttl: ttl}, nil
}

func (s *Redis) Load(ctx context.Context, id string) (*model.MemorySnapshot, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var snap model.MemorySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// a corrupt snapshot starts the conversation over
		return nil, nil
	}
	return &snap, nil
}

func (s *Redis) Save(ctx context.Context, id string, snap model.MemorySnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+id, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Close releases the client.
func (s *Redis) Close() error {
	return s.client.Close()
}
