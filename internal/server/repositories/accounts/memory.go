package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/blogauth/internal/common"
	"github.com/dmitrijs2005/blogauth/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps accounts in process memory. Inserts are
// serialised, so uniqueness holds under concurrent use.
type InMemoryRepository struct {
	mu         sync.RWMutex
	byEmail    map[string]*models.Account
	byUsername map[string]*models.Account
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byEmail:    make(map[string]*models.Account),
		byUsername: make(map[string]*models.Account),
	}
}

func (r *InMemoryRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byUsername[username]
	return ok, nil
}

func (r *InMemoryRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	found := *a
	return &found, nil
}

func (r *InMemoryRepository) Insert(ctx context.Context, draft *models.Account) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[draft.Email]; ok {
		return nil, &ConflictError{Field: FieldEmail}
	}
	if _, ok := r.byUsername[draft.Username]; ok {
		return nil, &ConflictError{Field: FieldUsername}
	}

	a := *draft
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()

	stored := a
	r.byEmail[a.Email] = &stored
	r.byUsername[a.Username] = &stored

	return &a, nil
}
