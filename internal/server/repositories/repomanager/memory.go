package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/blogauth/internal/dbx"
	"github.com/dmitrijs2005/blogauth/internal/server/repositories/accounts"
)

// InMemoryRepositoryManager hands out one shared in-memory account store,
// whatever handle it is given. Used for local runs and tests.
type InMemoryRepositoryManager struct {
	accounts *accounts.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{accounts: accounts.NewInMemoryRepository()}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Accounts(dbx.DBTX) accounts.Repository {
	return m.accounts
}
