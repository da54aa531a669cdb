// Package session lets callers round-trip conversation memory by session id
// instead of echoing the snapshot in every request. The engine stays
// stateless either way; this is a convenience cache in front of it.
package session

import (
	"context"
	"time"

	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

// Store persists memory snapshots per session id. Load returns nil for an
// unknown or expired session.
type Store interface {
	Load(ctx context.Context, id string) (*model.MemorySnapshot, error)
	Save(ctx context.Context, id string, snap model.MemorySnapshot) error
}

// StoreType selects the backend.
type StoreType string

const (
	MemoryStore StoreType = "memory"
	RedisStore  StoreType = "redis"
)

// DefaultTTL applies when no TTL is configured.
const DefaultTTL = 2 * time.Hour
