package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var ErrNotAcquired = errors.New("lock: not acquired")

type Manager struct {
	client *redis.Client
	logger *zerolog.Logger
}

func NewManager(client *redis.Client, logger *zerolog.Logger) *Manager {
	return &Manager{
		client: client,
		logger: logger,
	}
}

// Guard runs op while holding the lock stored at key.
// The lock key is watched, so any write queued by op through tx.TxPipelined
// is discarded once the lock expires and gets taken over by someone else
func (m *Manager) Guard(ctx context.Context, key string, ttl time.Duration, op func(tx *redis.Tx) error) error {
	token := uuid.NewString()

	acquired, err := m.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return fmt.Errorf("guard: acquire %s: %w", key, err)
	}
	if !acquired {
		return ErrNotAcquired
	}
	defer m.release(ctx, key, token)

	err = m.client.Watch(ctx, func(tx *redis.Tx) error {
		// the lease may have expired between SETNX and WATCH
		owner, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrNotAcquired
			}
			return fmt.Errorf("guard: check owner of %s: %w", key, err)
		}
		if owner != token {
			return ErrNotAcquired
		}
		return op(tx)
	}, key)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) || errors.Is(err, ErrNotAcquired) {
			return ErrNotAcquired
		}
		return err
	}

	return nil
}

func (m *Manager) release(ctx context.Context, key, token string) {
	err := m.client.Watch(ctx, func(tx *redis.Tx) error {
		owner, err := tx.Get(ctx, key).Result()
		if err != nil {
			return err
		}
		if owner != token {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		return err
	}, key)
	switch {
	case err == nil:
	case errors.Is(err, redis.Nil), errors.Is(err, redis.TxFailedErr):
		m.logger.Warn().Str("key", key).Msg("Lock expired before it was released")
	default:
		m.logger.Error().Err(err).Str("key", key).Msg("Failed to release lock")
	}
}
