package store

import (
	"context"
	"testing"

	"github.com/portfolio-dev/portfolio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreateAssignsIDAndTimestamps(t *testing.T) {
	repo := NewMemory[models.Service]()
	ctx := context.Background()

	svc := models.Service{Title: "Web Dev", Description: "APIs"}
	require.NoError(t, repo.Create(ctx, &svc))

	assert.Equal(t, uint(1), svc.ID)
	assert.False(t, svc.CreatedAt.IsZero())
	assert.False(t, svc.UpdatedAt.IsZero())

	got, err := repo.Get(ctx, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Web Dev", got.Title)
	assert.Equal(t, "APIs", got.Description)
}

func TestMemoryGetUnknownID(t *testing.T) {
	repo := NewMemory[models.Service]()

	_, err := repo.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryListKeepsInsertionOrder(t *testing.T) {
	repo := NewMemory[models.Project]()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &models.Project{Title: title}))
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "third", items[2].Title)
}

func TestMemorySaveReplacesExisting(t *testing.T) {
	repo := NewMemory[models.Project]()
	ctx := context.Background()

	p := models.Project{Title: "old"}
	require.NoError(t, repo.Create(ctx, &p))

	p.Title = "new"
	require.NoError(t, repo.Save(ctx, &p))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryDeleteAllReportsCount(t *testing.T) {
	repo := NewMemory[models.Contact]()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Create(ctx, &models.Contact{Email: "a@b.co"}))
	}

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = repo.First(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryFirstReturnsOldest(t *testing.T) {
	repo := NewMemory[models.PortfolioInfo]()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.PortfolioInfo{Name: "one"}))
	require.NoError(t, repo.Create(ctx, &models.PortfolioInfo{Name: "two"}))

	first, err := repo.First(ctx)
	require.NoError(t, err)
	assert.Equal(t, "one", first.Name)
}

func TestMemoryUsersUniqueEmail(t *testing.T) {
	users := &MemoryUsers{NewMemory[models.User]()}
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &models.User{Name: "A", Email: "a@b.co", PasswordHash: "x"}))

	err := users.Create(ctx, &models.User{Name: "B", Email: "a@b.co", PasswordHash: "y"})
	assert.ErrorIs(t, err, ErrDuplicate)

	// Case-insensitive, matching the citext-style unique index.
	err = users.Create(ctx, &models.User{Name: "C", Email: "A@B.CO", PasswordHash: "z"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryUsersFindByEmail(t *testing.T) {
	users := &MemoryUsers{NewMemory[models.User]()}
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &models.User{Name: "A", Email: "a@b.co", PasswordHash: "x"}))

	got, err := users.FindByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	_, err = users.FindByEmail(ctx, "missing@b.co")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	repo := NewMemory[models.Service]()
	ctx := context.Background()

	svc := models.Service{Title: "original", Description: "d"}
	require.NoError(t, repo.Create(ctx, &svc))

	got, err := repo.Get(ctx, svc.ID)
	require.NoError(t, err)

	got.Title = "mutated"

	again, err := repo.Get(ctx, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Title)
}
