// Package ledger mantém os tokens de recuperação de senha: entradas
// de uso único com validade limitada, mapeando token -> email.
package ledger

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

// ErrTokenInvalid covers both unknown and expired tokens so callers
// can answer without leaking which case it was.
var ErrTokenInvalid = errors.New("invalid or expired token")

// ErrTokenCollision is returned when a generated token already exists.
// Callers retry with a fresh token.
var ErrTokenCollision = errors.New("token already exists")

// Ledger is the reset-token store. Consume must be atomic: under
// concurrent calls with the same token, exactly one succeeds.
type Ledger interface {
	// Put registers token -> email valid until expiresAt.
	Put(ctx context.Context, token string, email string, expiresAt time.Time) error
	// Consume validates and deletes the token, returning the email it
	// was issued for. Unknown or expired tokens yield ErrTokenInvalid.
	Consume(ctx context.Context, token string) (string, error)
	// Sweep drops expired entries. Implementations with native TTL may
	// make this a no-op.
	Sweep(ctx context.Context) error
}

// NewToken returns a fresh 128-bit recovery token in hex.
func NewToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
