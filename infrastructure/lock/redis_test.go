package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T, ttl time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	locker := NewRedisLocker(client, ttl)
	locker.retryDelay = 10 * time.Millisecond

	return locker, mr
}

func TestAcquire_SetsAndReleasesKey(t *testing.T) {
	locker, mr := newTestLocker(t, time.Second)

	release, err := locker.Acquire(context.Background(), "R1")
	require.NoError(t, err)
	assert.True(t, mr.Exists(keyPrefix+"R1"))

	release()
	assert.False(t, mr.Exists(keyPrefix+"R1"))
}

func TestAcquire_DifferentKeysDoNotBlock(t *testing.T) {
	locker, _ := newTestLocker(t, time.Second)

	releaseA, err := locker.Acquire(context.Background(), "A")
	require.NoError(t, err)
	defer releaseA()

	releaseB, err := locker.Acquire(context.Background(), "B")
	require.NoError(t, err)
	releaseB()
}

func TestAcquire_TimesOutWhileHeld(t *testing.T) {
	locker, _ := newTestLocker(t, 50*time.Millisecond)
	locker.maxWait = 30 * time.Millisecond

	release, err := locker.Acquire(context.Background(), "R1")
	require.NoError(t, err)
	defer release()

	_, err = locker.Acquire(context.Background(), "R1")
	assert.ErrorIs(t, err, ErrLockNotAcquired)
}

func TestAcquire_ContextCancelled(t *testing.T) {
	locker, _ := newTestLocker(t, time.Second)

	release, err := locker.Acquire(context.Background(), "R1")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locker.Acquire(ctx, "R1")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestAcquire_SerializesSameKey(t *testing.T) {
	locker, _ := newTestLocker(t, time.Second)

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
		wg      sync.WaitGroup
	)

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := locker.Acquire(context.Background(), "R1")
			if !assert.NoError(t, err) {
				return
			}

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()

			release()
		}()
	}

	wg.Wait()
	assert.Equal(t, 1, maxSeen)
}

func TestRelease_DoesNotRemoveForeignLock(t *testing.T) {
	locker, mr := newTestLocker(t, time.Second)

	require.NoError(t, mr.Set(keyPrefix+"R1", "other-owner"))

	err := locker.release(context.Background(), keyPrefix+"R1", "my-token")

	assert.ErrorIs(t, err, ErrLockNotHeld)
	assert.True(t, mr.Exists(keyPrefix+"R1"))
}

func TestAcquire_RedisUnavailable(t *testing.T) {
	locker, mr := newTestLocker(t, time.Second)
	mr.Close()

	_, err := locker.Acquire(context.Background(), "R1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to acquire lock")
}

func TestAcquire_DefaultTTLOutlivesSlowFetch(t *testing.T) {
	locker, mr := newTestLocker(t, 0)
	locker.maxWait = 30 * time.Millisecond

	release, err := locker.Acquire(context.Background(), "R1")
	require.NoError(t, err)
	defer release()

	// Dono ainda buscando no AppMetrica após o timeout padrão de 45s
	mr.FastForward(46 * time.Second)

	_, err = locker.Acquire(context.Background(), "R1")
	assert.ErrorIs(t, err, ErrLockNotAcquired)
	assert.True(t, mr.Exists(keyPrefix+"R1"))
}
