package ratelimit_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igoratamanchuk/findamechanic/internal/ratelimit"
)

func allowN(t *testing.T, l ratelimit.Limiter, key string, n int) int {
	t.Helper()
	allowed := 0
	for i := 0; i < n; i++ {
		ok, err := l.Allow(context.Background(), key)
		require.NoError(t, err)
		if ok {
			allowed++
		}
	}
	return allowed
}

func TestLocal_BurstThenDeny(t *testing.T) {
	l := ratelimit.NewLocal(0.001, 3)

	assert.Equal(t, 3, allowN(t, l, "1.2.3.4", 10))
}

func TestLocal_KeysAreIsolated(t *testing.T) {
	l := ratelimit.NewLocal(0.001, 2)

	assert.Equal(t, 2, allowN(t, l, "a", 5))
	assert.Equal(t, 2, allowN(t, l, "b", 5))
}

// newTestRedis connects to TEST_REDIS_URL or skips the test.
func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set; skipping Redis rate limiter tests")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestRedis_BurstThenDeny(t *testing.T) {
	client := newTestRedis(t)
	l := ratelimit.NewRedis(client, 0.01, 3)
	key := fmt.Sprintf("test-%d", time.Now().UnixNano())

	assert.Equal(t, 3, allowN(t, l, key, 6))
	assert.Equal(t, 3, allowN(t, l, key+"-other", 6))
}
