// Package usernames derives the public username of a new account from its
// email address.
package usernames

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

const suffixLength = 5

// Checker reports whether a username is already taken.
type Checker interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type Allocator struct {
	accounts Checker
	suffix   func() string
}

func NewAllocator(accounts Checker) *Allocator {
	return &Allocator{accounts: accounts, suffix: randomSuffix}
}

// Allocate returns the email local part when it is free, otherwise the local
// part plus "-" and a short random suffix. Only the base candidate is
// checked against the store; the suffixed form is assumed to be free and the
// store's unique constraint catches the rare collision.
func (a *Allocator) Allocate(ctx context.Context, email string) (string, error) {
	username, _, _ := strings.Cut(email, "@")

	taken, err := a.accounts.ExistsByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("checking username %q: %w", username, err)
	}
	if !taken {
		return username, nil
	}

	return username + "-" + a.suffix(), nil
}

// randomSuffix takes the tail of a fully random ULID: lowercase Crockford
// base32, so letters and digits only.
func randomSuffix() string {
	id := ulid.MustNew(ulid.Now(), rand.Reader).String()
	return strings.ToLower(id[len(id)-suffixLength:])
}
