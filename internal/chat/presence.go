package chat

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	presenceSetKey    = "presence:online"
	presenceKeyPrefix = "presence:user:"
)

// PresenceTracker keeps the online-user set in Redis. Each user gets a
// TTL'd key refreshed by heartbeats; the set is pruned lazily when read, so
// a crashed process cannot leave a user online forever.
type PresenceTracker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPresenceTracker(client *redis.Client, ttl time.Duration) *PresenceTracker {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &PresenceTracker{client: client, ttl: ttl}
}

func (p *PresenceTracker) MarkOnline(ctx context.Context, userID string) error {
	pipe := p.client.TxPipeline()
	pipe.SAdd(ctx, presenceSetKey, userID)
	pipe.Set(ctx, presenceKeyPrefix+userID, "1", p.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (p *PresenceTracker) Heartbeat(ctx context.Context, userID string) error {
	return p.client.Expire(ctx, presenceKeyPrefix+userID, p.ttl).Err()
}

func (p *PresenceTracker) MarkOffline(ctx context.Context, userID string) error {
	pipe := p.client.TxPipeline()
	pipe.SRem(ctx, presenceSetKey, userID)
	pipe.Del(ctx, presenceKeyPrefix+userID)
	_, err := pipe.Exec(ctx)
	return err
}

func (p *PresenceTracker) IsOnline(ctx context.Context, userID string) (bool, error) {
	n, err := p.client.Exists(ctx, presenceKeyPrefix+userID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// OnlineUsers returns every member of the online set whose TTL key is still
// alive, removing stale members as it goes.
func (p *PresenceTracker) OnlineUsers(ctx context.Context) ([]string, error) {
	members, err := p.client.SMembers(ctx, presenceSetKey).Result()
	if err != nil {
		return nil, err
	}

	online := make([]string, 0, len(members))
	for _, member := range members {
		alive, err := p.IsOnline(ctx, member)
		if err != nil {
			return nil, err
		}
		if alive {
			online = append(online, member)
			continue
		}
		_ = p.client.SRem(ctx, presenceSetKey, member).Err()
	}
	return online, nil
}
