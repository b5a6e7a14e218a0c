package accounts

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/blogauth/internal/common"
	"github.com/dmitrijs2005/blogauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Repository = (*InMemoryRepository)(nil)
	_ Repository = (*PostgresRepository)(nil)
)

func TestInMemory_InsertAndFind(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	got, err := repo.Insert(ctx, draft())
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, got, found)

	ok, err := repo.ExistsByUsername(ctx, "jane")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.FindByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemory_Conflicts(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Insert(ctx, draft())
	require.NoError(t, err)

	sameEmail := draft()
	sameEmail.Username = "other"
	_, err = repo.Insert(ctx, sameEmail)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, FieldEmail, conflict.Field)

	sameUsername := draft()
	sameUsername.Email = "other@x.com"
	_, err = repo.Insert(ctx, sameUsername)
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, FieldUsername, conflict.Field)

	_, err = repo.FindByEmail(ctx, "other@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound, "failed insert must leave nothing behind")
}

func TestInMemory_ReturnsCopies(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	got, err := repo.Insert(ctx, draft())
	require.NoError(t, err)
	got.Fullname = "Mallory"

	found, err := repo.FindByEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", found.Fullname)
}

func TestInMemory_ConcurrentSameEmail(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	var ok, conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d := draft()
			d.Username = fmt.Sprintf("jane%d", i)
			_, err := repo.Insert(ctx, d)
			if err == nil {
				ok.Add(1)
				return
			}
			var conflict *ConflictError
			if assert.ErrorAs(t, err, &conflict) {
				conflicts.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, ok.Load())
	assert.EqualValues(t, 31, conflicts.Load())
}

func TestInMemory_CancelledContext(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Insert(ctx, &models.Account{Email: "a@x.com", Username: "a"})
	assert.ErrorIs(t, err, context.Canceled)
}
