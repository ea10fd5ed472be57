package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "reset:"

// consumeScript reads and deletes in one round trip so two concurrent
// restores with the same token cannot both win.
var consumeScript = redis.NewScript(`
local v = redis.call("GET", KEYS[1])
if v then
	redis.call("DEL", KEYS[1])
end
return v
`)

// RedisLedger stores reset tokens in Redis with native TTLs, so tokens
// survive restarts and are shared across instances.
type RedisLedger struct {
	client *redis.Client
}

func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

func (l *RedisLedger) Put(ctx context.Context, token string, email string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return errors.New("expiry is in the past")
	}
	ok, err := l.client.SetNX(ctx, keyPrefix+token, email, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrTokenCollision
	}
	return nil
}

func (l *RedisLedger) Consume(ctx context.Context, token string) (string, error) {
	v, err := consumeScript.Run(ctx, l.client, []string{keyPrefix + token}).Result()
	if err == redis.Nil || v == nil {
		return "", ErrTokenInvalid
	}
	if err != nil {
		return "", err
	}
	email, ok := v.(string)
	if !ok || email == "" {
		return "", ErrTokenInvalid
	}
	return email, nil
}

// Sweep is a no-op: Redis expires keys by TTL on its own.
func (l *RedisLedger) Sweep(ctx context.Context) error {
	return nil
}
