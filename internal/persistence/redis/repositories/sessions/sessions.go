package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"github.com/sergeii/enigma/internal/core/entities/filterset"
	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/persistence/redis/redislock"
	"github.com/sergeii/enigma/pkg/redisutils"
)

const (
	itemsKey   = "sessions:items"
	updatesKey = "sessions:updated"
	lockKeyFmt = "sessions:lock:%s"
)

// saveScript overwrites a stored session only while it still exists,
// so a session removed mid-update is not brought back
var saveScript = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
redis.call("ZADD", KEYS[2], ARGV[3], ARGV[1])
return 1
`)

type LockOpts struct {
	LeaseDuration time.Duration
	RetryBackoff  time.Duration
	MaxAttempts   int
}

var DefaultLockOpts = LockOpts{
	LeaseDuration: time.Second,
	RetryBackoff:  50 * time.Millisecond,
	MaxAttempts:   5,
}

type Repository struct {
	client   *redis.Client
	clock    clockwork.Clock
	locker   *redislock.Manager
	lockOpts LockOpts
}

func New(client *redis.Client, locker *redislock.Manager, c clockwork.Clock) *Repository {
	return NewWithLockOpts(client, locker, c, DefaultLockOpts)
}

func NewWithLockOpts(
	client *redis.Client,
	locker *redislock.Manager,
	c clockwork.Clock,
	opts LockOpts,
) *Repository {
	return &Repository{
		client:   client,
		clock:    c,
		locker:   locker,
		lockOpts: opts,
	}
}

func (r *Repository) Add(ctx context.Context, s session.Session) error {
	item, err := encodeSession(s)
	if err != nil {
		return err
	}
	var added *redis.BoolCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		added = pipe.HSetNX(ctx, itemsKey, s.ID.String(), item)
		pipe.ZAddNX(ctx, updatesKey, redis.Z{
			Score:  float64(s.UpdatedAt.UnixNano()),
			Member: s.ID.String(),
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add session: %w", err)
	}
	if !added.Val() {
		return repositories.ErrSessionExists
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (session.Session, error) {
	return r.get(ctx, r.client, id)
}

func (r *Repository) Update(
	ctx context.Context,
	id uuid.UUID,
	fn func(*session.Session) error,
) (session.Session, error) {
	var updated session.Session
	err := r.updateExclusive(ctx, id, func(tx *redis.Tx) error {
		s, err := r.get(ctx, tx, id)
		if err != nil {
			return err
		}
		if err = fn(&s); err != nil {
			return err
		}
		s.UpdatedAt = r.clock.Now().UTC()
		item, err := encodeSession(s)
		if err != nil {
			return err
		}
		var saved *redis.Cmd
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			saved = saveScript.Eval(
				ctx, pipe,
				[]string{itemsKey, updatesKey},
				id.String(), item, float64(s.UpdatedAt.UnixNano()),
			)
			return nil
		})
		if err != nil {
			return err
		}
		written, err := saved.Int()
		if err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		if written == 0 {
			return repositories.ErrSessionNotFound
		}
		updated = s
		return nil
	})
	if err != nil {
		return session.Blank, err
	}
	return updated, nil
}

func (r *Repository) Remove(ctx context.Context, id uuid.UUID) error {
	var removed *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.HDel(ctx, itemsKey, id.String())
		pipe.ZRem(ctx, updatesKey, id.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	if removed.Val() == 0 {
		return repositories.ErrSessionNotFound
	}
	return nil
}

// List returns the sessions, most recently updated first
func (r *Repository) List(ctx context.Context) ([]session.Session, error) {
	ids, err := r.client.ZRevRange(ctx, updatesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session ids: %w", err)
	}
	if len(ids) == 0 {
		return []session.Session{}, nil
	}
	items, err := r.client.HMGet(ctx, itemsKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	result := make([]session.Session, 0, len(items))
	for _, item := range items {
		// removed in between the calls
		if item == nil {
			continue
		}
		s, err := decodeSession(item)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// Clear removes the sessions matching fs and returns the ids of the removed ones
func (r *Repository) Clear(ctx context.Context, fs filterset.SessionFilterSet) ([]uuid.UUID, error) {
	stop := "+inf"
	if updatedBefore, ok := fs.GetUpdatedBefore(); ok {
		stop = "(" + strconv.FormatInt(updatedBefore.UnixNano(), 10)
	}

	ids, err := r.client.ZRangeArgs(
		ctx,
		redis.ZRangeArgs{
			Key:     updatesKey,
			ByScore: true,
			Start:   "-inf",
			Stop:    stop,
		},
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions to remove: %w", err)
	}

	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	deleted := make([]*redis.IntCmd, len(ids))
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, updatesKey, redisutils.KeysToMembers(ids)...)
		for i, id := range ids {
			deleted[i] = pipe.HDel(ctx, itemsKey, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove sessions: %w", err)
	}

	removed := make([]uuid.UUID, 0, len(ids))
	for i, cmd := range deleted {
		// already gone
		if cmd.Val() == 0 {
			continue
		}
		id, err := uuid.Parse(ids[i])
		if err != nil {
			continue
		}
		removed = append(removed, id)
	}

	return removed, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.client.HLen(ctx, itemsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return int(count), nil
}

type getter interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
}

func (r *Repository) get(ctx context.Context, cmd getter, id uuid.UUID) (session.Session, error) {
	item, err := cmd.HGet(ctx, itemsKey, id.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.Blank, repositories.ErrSessionNotFound
		}
		return session.Blank, fmt.Errorf("failed to retrieve session by id: %w", err)
	}
	return decodeSession(item)
}

func (r *Repository) updateExclusive(ctx context.Context, id uuid.UUID, op func(tx *redis.Tx) error) error {
	lockKey := fmt.Sprintf(lockKeyFmt, id)
	for attempt := range r.lockOpts.MaxAttempts {
		err := r.locker.Guard(ctx, lockKey, r.lockOpts.LeaseDuration, op)
		if err == nil {
			return nil
		}
		if !errors.Is(err, redislock.ErrNotAcquired) {
			return err
		}
		if attempt < r.lockOpts.MaxAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.lockOpts.RetryBackoff):
			}
		}
	}
	return repositories.ErrSessionBusy
}

func encodeSession(s session.Session) ([]byte, error) {
	encoded, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session item: %w", err)
	}
	return encoded, nil
}

func decodeSession(val any) (session.Session, error) {
	var decoded session.Session
	encoded, ok := val.(string)
	if !ok {
		return session.Blank, fmt.Errorf("unexpected type %T, %v", val, val)
	}
	if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
		return session.Blank, fmt.Errorf("failed to unmarshal session item: %w", err)
	}
	return decoded, nil
}
