package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
)

func TestClientRepositoryCRUD(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewClientRepository(db)

	client := seedClient(t, db, "Alice Durand", "alice@example.com")
	require.NotZero(t, client.ID)

	found, err := repo.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Durand", found.Name)
	assert.Equal(t, "alice@example.com", found.Email)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	client.Name = "Alice Martin"
	require.NoError(t, repo.Update(ctx, client))
	found, err = repo.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Martin", found.Name)

	err = repo.Update(ctx, &domain.Client{ID: 9999, Name: "Ghost", Email: "ghost@example.com"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	outcome, err := repo.Delete(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteOutcomeDeleted, outcome)

	outcome, err = repo.Delete(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteOutcomeNotFound, outcome)
}

func TestClientRepositoryDuplicateEmail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewClientRepository(db)

	seedClient(t, db, "Alice Durand", "alice@example.com")

	err := repo.Create(ctx, domain.NewClient("Autre Alice", "alice@example.com"))
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	// Update onto a taken email fails the same way
	other := seedClient(t, db, "Bernard Petit", "bernard@example.com")
	other.Email = "alice@example.com"
	err = repo.Update(ctx, other)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestClientRepositoryListSearch(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewClientRepository(db)

	seedClient(t, db, "Alice Durand", "alice@example.com")
	seedClient(t, db, "Bernard Petit", "bernard@societe.fr")
	seedClient(t, db, "Claire Morel", "claire.durand@societe.fr")

	// Newest first
	clients, err := repo.List(ctx, repository.ClientFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "Claire Morel", clients[0].Name)
	assert.Equal(t, "Alice Durand", clients[2].Name)

	// Search matches name and email, case-insensitively
	clients, err = repo.List(ctx, repository.ClientFilter{Search: strPtr("DURAND"), Limit: 10})
	require.NoError(t, err)
	assert.Len(t, clients, 2)

	count, err := repo.Count(ctx, repository.ClientFilter{Search: strPtr("DURAND")})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Pagination
	clients, err = repo.List(ctx, repository.ClientFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Alice Durand", clients[0].Name)
}
