package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
)

func TestOfferRepositoryCRUD(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewOfferRepository(db)

	offer := seedOffer(t, db, "Fibre 1000", intPtr(1000), intPtr(39))
	require.NotZero(t, offer.ID)

	found, err := repo.FindByID(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fibre 1000", found.Name)
	require.NotNil(t, found.DebitMbps)
	assert.Equal(t, 1000, *found.DebitMbps)

	// Optional columns round-trip as NULL
	bare := seedOffer(t, db, "Offre mystère", nil, nil)
	found, err = repo.FindByID(ctx, bare.ID)
	require.NoError(t, err)
	assert.Nil(t, found.DebitMbps)
	assert.Nil(t, found.Price)

	err = repo.Create(ctx, domain.NewOffer("Fibre 1000", nil, nil))
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestOfferRepositoryGuardedDelete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewOfferRepository(db)

	client := seedClient(t, db, "Alice Durand", "alice@example.com")
	used := seedOffer(t, db, "Fibre 1000", intPtr(1000), intPtr(39))
	unused := seedOffer(t, db, "ADSL", intPtr(20), intPtr(15))
	seedSubscription(t, db, client.ID, used.ID, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), nil)

	// An offer referenced by a subscription cannot be removed
	outcome, err := repo.Delete(ctx, used.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteOutcomeBlocked, outcome)

	_, err = repo.FindByID(ctx, used.ID)
	assert.NoError(t, err, "blocked delete must leave the row in place")

	outcome, err = repo.Delete(ctx, unused.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteOutcomeDeleted, outcome)

	outcome, err = repo.Delete(ctx, 9999)
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteOutcomeNotFound, outcome)
}
