package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisChannel broadcasts notifications over redis, either as a PUBLISH on a
// channel ("pubsub" mode) or an LPUSH onto a list. Fire-and-forget like every
// other channel; nothing tracks whether a subscriber was listening.
type RedisChannel struct {
	client *redis.Client
	key    string
	mode   string
}

func NewRedisChannel(addr, password string, db int, key, mode string) (*RedisChannel, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisChannel{client: rdb, key: key, mode: mode}, nil
}

func (r *RedisChannel) Name() string { return "redis" }

func (r *RedisChannel) Send(ctx context.Context, n Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if r.mode == "pubsub" {
		return r.client.Publish(ctx, r.key, data).Err()
	}
	return r.client.LPush(ctx, r.key, data).Err()
}

func (r *RedisChannel) Close() error { return r.client.Close() }
