package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mkovac/blogd/internal/domain"
)

// PasswordHasher defines the password hashing capability. Hash is salted
// and CPU-heavy; implementations must be safe to call from request-handling
// goroutines without starving them.
type PasswordHasher interface {
	// Hash derives a salted hash from the password. The work runs off the
	// calling goroutine; cancellation of ctx unblocks the caller early.
	// Returns ErrPasswordTooLong when the password exceeds the algorithm's
	// input limit.
	Hash(ctx context.Context, password domain.Password) (domain.PasswordHash, error)

	// Compare checks a password against a stored hash. Returns nil on
	// match, ErrPasswordMismatch on a legitimate mismatch, and any other
	// error when the stored hash is corrupt.
	Compare(hash domain.PasswordHash, password domain.Password) error
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher. A cost outside bcrypt's valid
// range falls back to the default cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

var _ PasswordHasher = (*BcryptHasher)(nil)

// Hash implements PasswordHasher. The key derivation runs on its own
// goroutine; the caller always awaits either the result or ctx
// cancellation, there is no fire-and-forget path.
func (h *BcryptHasher) Hash(ctx context.Context, password domain.Password) (domain.PasswordHash, error) {
	// bcrypt accepts at most 72 bytes of input.
	if len(password.Expose()) > 72 {
		return domain.PasswordHash{}, ErrPasswordTooLong
	}

	type result struct {
		hash []byte
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		hash, err := bcrypt.GenerateFromPassword(password.Expose(), h.cost)
		ch <- result{hash: hash, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return domain.PasswordHash{}, fmt.Errorf("failed to hash password: %w", r.err)
		}
		return domain.NewPasswordHash(string(r.hash)), nil
	case <-ctx.Done():
		return domain.PasswordHash{}, ctx.Err()
	}
}

// Compare implements PasswordHasher.
func (h *BcryptHasher) Compare(hash domain.PasswordHash, password domain.Password) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash.Value()), password.Expose())
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return fmt.Errorf("failed to verify password: %w", err)
}
