package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/aidigitalcashout-cell/v0-ecobank/internal/domain/repository"
)

const probeSuffix = ":__probe__"

// SnapshotRepository persists aggregate snapshots as JSON values in Redis,
// one value per key, overwritten wholesale on every save. All operations are
// non-throwing: failures are logged at Warn and swallowed so a missing or
// broken Redis never takes the application down.
type SnapshotRepository struct {
	rdb    *redis.Client
	prefix string
	logger *logrus.Logger
	opTTL  time.Duration
}

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

func NewSnapshotRepository(rdb *redis.Client, prefix string, logger *logrus.Logger) *SnapshotRepository {
	return &SnapshotRepository{rdb: rdb, prefix: prefix, logger: logger, opTTL: 2 * time.Second}
}

func (r *SnapshotRepository) key(k string) string {
	return r.prefix + ":" + k
}

// available runs a defensive trial write+delete. Any error means the store is
// treated as unavailable for this call.
func (r *SnapshotRepository) available(ctx context.Context) bool {
	if r.rdb == nil {
		return false
	}
	probe := r.prefix + probeSuffix
	if err := r.rdb.Set(ctx, probe, "1", r.opTTL).Err(); err != nil {
		return false
	}
	if err := r.rdb.Del(ctx, probe).Err(); err != nil {
		return false
	}
	return true
}

func (r *SnapshotRepository) Save(ctx context.Context, key string, value any) {
	if !r.available(ctx) {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		r.warn("failed to serialize snapshot", key, err)
		return
	}
	if err := r.rdb.Set(ctx, r.key(key), b, 0).Err(); err != nil {
		r.warn("failed to save snapshot", key, err)
	}
}

func (r *SnapshotRepository) Load(ctx context.Context, key string, dest any) bool {
	if !r.available(ctx) {
		return false
	}
	b, err := r.rdb.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		r.warn("failed to load snapshot", key, err)
		return false
	}
	if err := json.Unmarshal(b, dest); err != nil {
		r.warn("failed to decode snapshot", key, err)
		return false
	}
	return true
}

func (r *SnapshotRepository) Remove(ctx context.Context, key string) {
	if !r.available(ctx) {
		return
	}
	if err := r.rdb.Del(ctx, r.key(key)).Err(); err != nil {
		r.warn("failed to remove snapshot", key, err)
	}
}

func (r *SnapshotRepository) Clear(ctx context.Context) {
	if !r.available(ctx) {
		return
	}
	keys, err := r.rdb.Keys(ctx, r.prefix+":*").Result()
	if err != nil {
		r.warn("failed to list namespace keys", r.prefix, err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		r.warn("failed to clear namespace", r.prefix, err)
	}
}

func (r *SnapshotRepository) warn(msg, key string, err error) {
	if r.logger != nil {
		r.logger.WithError(err).WithField("key", key).Warn(msg)
	}
}
