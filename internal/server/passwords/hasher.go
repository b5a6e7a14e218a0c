// Package passwords stores and checks passwords as salted bcrypt hashes.
//
// bcrypt is deliberately slow, so every Hash/Verify call first takes a slot
// from a bounded pool. When all slots are busy callers wait, and give up as
// soon as their context is done.
package passwords

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/dmitrijs2005/blogauth/internal/common"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// DefaultCost matches the work factor accounts were historically hashed with.
const DefaultCost = 10

type Hasher struct {
	cost  int
	slots *semaphore.Weighted
}

// NewHasher returns a Hasher using cost and running at most workers bcrypt
// computations at once. Non-positive workers means runtime.NumCPU().
func NewHasher(cost int, workers int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Hasher{cost: cost, slots: semaphore.NewWeighted(int64(workers))}, nil
}

// Hash returns the bcrypt encoding of plaintext. Salt and cost are embedded
// in the result.
func (h *Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("waiting for hashing slot: %w", err)
	}
	defer h.slots.Release(1)

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash. A hash that is not a valid
// bcrypt encoding yields common.ErrHashMalformed.
func (h *Hasher) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("waiting for hashing slot: %w", err)
	}
	defer h.slots.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrHashMalformed, err)
	}
}
