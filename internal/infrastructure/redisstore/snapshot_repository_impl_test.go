package redisstore_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidigitalcashout-cell/v0-ecobank/internal/infrastructure/redisstore"
)

// unreachableClient points at a port nothing listens on, so every command
// fails fast. The repository must degrade to no-ops rather than error out.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		ReadTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestDegradesWhenRedisUnavailable(t *testing.T) {
	rdb := unreachableClient()
	t.Cleanup(func() { _ = rdb.Close() })
	repo := redisstore.NewSnapshotRepository(rdb, "testapp", quietLogger())
	ctx := context.Background()

	require.NotPanics(t, func() {
		repo.Save(ctx, "state", map[string]string{"k": "v"})
		repo.Remove(ctx, "state")
		repo.Clear(ctx)
	})

	var dest map[string]string
	assert.False(t, repo.Load(ctx, "state", &dest))
	assert.Nil(t, dest)
}

func TestDegradesWithNilClient(t *testing.T) {
	repo := redisstore.NewSnapshotRepository(nil, "testapp", quietLogger())
	ctx := context.Background()

	require.NotPanics(t, func() {
		repo.Save(ctx, "state", "anything")
		repo.Remove(ctx, "state")
		repo.Clear(ctx)
	})
	var dest string
	assert.False(t, repo.Load(ctx, "state", &dest))
}
