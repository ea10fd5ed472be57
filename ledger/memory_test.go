package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	require.NoError(t, err)
	b, err := NewToken()
	require.NoError(t, err)

	assert.Len(t, a, 32) // 16 bytes hex
	assert.NotEqual(t, a, b)
}

func TestMemoryLedger_ConsumeOnce(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	require.NoError(t, l.Put(ctx, "tok1", "a@x.com", time.Now().Add(time.Hour)))

	email, err := l.Consume(ctx, "tok1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	_, err = l.Consume(ctx, "tok1")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestMemoryLedger_UnknownToken(t *testing.T) {
	l := NewMemoryLedger()
	_, err := l.Consume(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestMemoryLedger_Expiry(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	now := time.Now()
	l.now = func() time.Time { return now }

	require.NoError(t, l.Put(ctx, "tok1", "a@x.com", now.Add(time.Hour)))

	// just before expiry: valid
	l.now = func() time.Time { return now.Add(59 * time.Minute) }
	email, err := l.Consume(ctx, "tok1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	// past expiry: invalid
	require.NoError(t, l.Put(ctx, "tok2", "a@x.com", now.Add(time.Hour)))
	l.now = func() time.Time { return now.Add(61 * time.Minute) }
	_, err = l.Consume(ctx, "tok2")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestMemoryLedger_Collision(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	require.NoError(t, l.Put(ctx, "tok1", "a@x.com", time.Now().Add(time.Hour)))
	err := l.Put(ctx, "tok1", "b@x.com", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrTokenCollision)
}

func TestMemoryLedger_TwoTokensIndependent(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()
	exp := time.Now().Add(time.Hour)

	require.NoError(t, l.Put(ctx, "tok1", "a@x.com", exp))
	require.NoError(t, l.Put(ctx, "tok2", "a@x.com", exp))

	email, err := l.Consume(ctx, "tok2")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	// tok1 still valid after tok2 was used
	email, err = l.Consume(ctx, "tok1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestMemoryLedger_ConcurrentConsume(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()
	require.NoError(t, l.Put(ctx, "tok1", "a@x.com", time.Now().Add(time.Hour)))

	const goroutines = 16
	var wg sync.WaitGroup
	wins := make(chan struct{}, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.Consume(ctx, "tok1"); err == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	assert.Equal(t, 1, count, "exactly one consumer should win")
}

func TestMemoryLedger_Sweep(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	now := time.Now()
	l.now = func() time.Time { return now }

	require.NoError(t, l.Put(ctx, "live", "a@x.com", now.Add(time.Hour)))
	require.NoError(t, l.Put(ctx, "stale", "b@x.com", now.Add(time.Minute)))

	l.now = func() time.Time { return now.Add(30 * time.Minute) }
	require.NoError(t, l.Sweep(ctx))

	assert.Equal(t, 1, l.Len())
	_, err := l.Consume(ctx, "live")
	assert.NoError(t, err)
}
