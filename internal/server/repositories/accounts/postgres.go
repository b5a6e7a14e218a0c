package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogauth/internal/common"
	"github.com/dmitrijs2005/blogauth/internal/dbx"
	"github.com/dmitrijs2005/blogauth/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique constraint names, see migrations.
const (
	emailConstraint    = "accounts_email_key"
	usernameConstraint = "accounts_username_key"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, email, username, fullname, password_hash, profile_img, created_at
		 FROM accounts
		 WHERE email = $1
		 `

	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&a.ID, &a.Email, &a.Username, &a.Fullname, &a.PasswordHash, &a.ProfileImage, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, draft *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (email, username, fullname, password_hash, profile_img)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	a := *draft
	err := r.db.QueryRowContext(ctx, query,
		a.Email, a.Username, a.Fullname, a.PasswordHash, a.ProfileImage).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if field, ok := uniqueViolation(err); ok {
			return nil, &ConflictError{Field: field}
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &a, nil
}

func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return "", false
	}
	switch pgErr.ConstraintName {
	case emailConstraint:
		return FieldEmail, true
	case usernameConstraint:
		return FieldUsername, true
	default:
		return "", false
	}
}
