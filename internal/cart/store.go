package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/svsdigitals/printshop-backend/pkg/config"
	"github.com/svsdigitals/printshop-backend/pkg/logger"
	redisclient "github.com/svsdigitals/printshop-backend/pkg/redis"
)

type snapshotKV interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type snapshotKeyer interface {
	CartSnapshotKey(sessionID string) string
}

// SnapshotStore persists whole-cart JSON snapshots in Redis, one key
// per shopper session. Writes are last-write-wins; the reference
// system had a single logical writer per session and multi-tab
// conflicts resolve to the most recent full state.
type SnapshotStore struct {
	kv    snapshotKV
	keyer snapshotKeyer
	ttl   time.Duration
	logg  *logger.Logger
}

// NewSnapshotStore builds the Redis-backed snapshot store.
func NewSnapshotStore(client *redisclient.Client, cfg config.CartConfig, logg *logger.Logger) (*SnapshotStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	ttl := cfg.SnapshotTTL()
	if ttl <= 0 {
		return nil, fmt.Errorf("snapshot ttl must be positive")
	}
	return &SnapshotStore{
		kv:    client,
		keyer: client,
		ttl:   ttl,
		logg:  logg,
	}, nil
}

// Load returns the cart for the session. Missing or unreadable
// snapshots load as an empty cart, never an error: a corrupt blob
// must not lock a shopper out of the store.
func (s *SnapshotStore) Load(ctx context.Context, sessionID string) (*Cart, error) {
	raw, err := s.kv.Get(ctx, s.keyer.CartSnapshotKey(sessionID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return &Cart{}, nil
		}
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithCartSession(ctx, sessionID), "discarding corrupt cart snapshot")
		}
		return &Cart{}, nil
	}
	return &cart, nil
}

// Save writes the full cart state, refreshing the TTL.
func (s *SnapshotStore) Save(ctx context.Context, sessionID string, cart *Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart snapshot: %w", err)
	}
	if err := s.kv.Set(ctx, s.keyer.CartSnapshotKey(sessionID), string(payload), s.ttl); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

// Delete drops the session's snapshot entirely.
func (s *SnapshotStore) Delete(ctx context.Context, sessionID string) error {
	return s.kv.Del(ctx, s.keyer.CartSnapshotKey(sessionID))
}
