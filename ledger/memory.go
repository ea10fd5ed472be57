package ledger

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	email     string
	expiresAt time.Time
}

// MemoryLedger keeps tokens in process memory. Tokens do not survive a
// restart; the mutex makes validity-check plus delete a single step.
type MemoryLedger struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (l *MemoryLedger) Put(ctx context.Context, token string, email string, expiresAt time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.entries[token]; ok {
		return ErrTokenCollision
	}
	l.entries[token] = entry{email: email, expiresAt: expiresAt}
	return nil
}

func (l *MemoryLedger) Consume(ctx context.Context, token string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[token]
	if !ok {
		return "", ErrTokenInvalid
	}
	if !l.now().Before(e.expiresAt) {
		// stale entry, drop it while we hold the lock
		delete(l.entries, token)
		return "", ErrTokenInvalid
	}
	delete(l.entries, token)
	return e.email, nil
}

func (l *MemoryLedger) Sweep(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for token, e := range l.entries {
		if !now.Before(e.expiresAt) {
			delete(l.entries, token)
		}
	}
	return nil
}

// Len reports how many entries are live (expired included until swept).
func (l *MemoryLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
