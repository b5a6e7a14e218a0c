// Package accounts persists Account records and enforces that email and
// username are unique across all of them.
package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogauth/internal/common"
	"github.com/dmitrijs2005/blogauth/internal/server/models"
)

// Fields that may collide on insert.
const (
	FieldEmail    = "email"
	FieldUsername = "username"
)

type Repository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// FindByEmail returns common.ErrorNotFound when no account has that email.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	// Insert stores draft and returns it with ID and CreatedAt filled in.
	// A uniqueness violation is reported as *ConflictError.
	Insert(ctx context.Context, draft *models.Account) (*models.Account, error)
}

// ConflictError names the unique field an insert collided on.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already taken", e.Field)
}

func (e *ConflictError) Unwrap() error {
	return common.ErrorAlreadyExists
}
