package chat

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPresenceFixture(t *testing.T) (*PresenceTracker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewPresenceTracker(client, 2*time.Minute), mr
}

func TestPresenceOnlineOffline(t *testing.T) {
	p, _ := newPresenceFixture(t)
	ctx := context.Background()

	require.NoError(t, p.MarkOnline(ctx, "user-1"))

	online, err := p.IsOnline(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, online)

	users, err := p.OnlineUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, users)

	require.NoError(t, p.MarkOffline(ctx, "user-1"))

	online, err = p.IsOnline(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, online)

	users, err = p.OnlineUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestPresenceExpiryPrunesSet(t *testing.T) {
	p, mr := newPresenceFixture(t)
	ctx := context.Background()

	require.NoError(t, p.MarkOnline(ctx, "user-1"))
	require.NoError(t, p.MarkOnline(ctx, "user-2"))

	// user-1 goes quiet; user-2 keeps heartbeating.
	mr.FastForward(90 * time.Second)
	require.NoError(t, p.Heartbeat(ctx, "user-2"))
	mr.FastForward(60 * time.Second)

	users, err := p.OnlineUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-2"}, users, "stale members are pruned on read")

	online, err := p.IsOnline(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, online)
}

func TestHeartbeatRefreshesTTL(t *testing.T) {
	p, mr := newPresenceFixture(t)
	ctx := context.Background()

	require.NoError(t, p.MarkOnline(ctx, "user-1"))
	mr.FastForward(90 * time.Second)
	require.NoError(t, p.Heartbeat(ctx, "user-1"))
	mr.FastForward(90 * time.Second)

	online, err := p.IsOnline(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, online)
}
