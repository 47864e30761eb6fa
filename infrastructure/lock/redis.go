// Package lock serializa reconciliações concorrentes do mesmo influenciador via Redis.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vfg2006/influencer-stats-api/internal/config"
)

const (
	keyPrefix         = "influencer-stats:reconcile:"
	defaultTTL        = 90 * time.Second
	defaultRetryDelay = 100 * time.Millisecond
)

var (
	ErrLockNotAcquired = errors.New("lock not acquired")
	ErrLockNotHeld     = errors.New("lock not held")
)

var unlockScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`)

// RedisLocker adquire um lock por chave com SETNX e libera com script Lua,
// garantindo que só o dono do token remove a chave
type RedisLocker struct {
	client     redis.UniversalClient
	ttl        time.Duration
	retryDelay time.Duration
	maxWait    time.Duration
}

func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &RedisLocker{
		client:     client,
		ttl:        ttl,
		retryDelay: defaultRetryDelay,
		maxWait:    ttl,
	}
}

// NewClient cria o cliente Redis a partir da configuração
func NewClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Acquire bloqueia até obter o lock da chave, até o contexto ser cancelado
// ou até esgotar o tempo máximo de espera. A função retornada libera o lock.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := keyPrefix + key
	token := uuid.New().String()
	deadline := time.Now().Add(l.maxWait)

	for {
		acquired, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}

		if acquired {
			return func() {
				// O contexto da requisição pode já ter sido cancelado ao liberar
				releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = l.release(releaseCtx, lockKey, token)
			}, nil
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrLockNotAcquired, key)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retryDelay):
		}
	}
}

func (l *RedisLocker) release(ctx context.Context, lockKey, token string) error {
	result, err := unlockScript.Run(ctx, l.client, []string{lockKey}, token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}
