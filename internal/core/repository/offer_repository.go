package repository

import (
	"context"

	"github.com/martijn/wigest/internal/core/domain"
)

type OfferFilter struct {
	Search *string // substring match on nom
	Limit  int
	Offset int
}

type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) error
	FindByID(ctx context.Context, id int64) (*domain.Offer, error)
	Update(ctx context.Context, offer *domain.Offer) error

	// Delete refuses to remove an offer that subscriptions still reference.
	// The dependent check and the delete run in one transaction.
	Delete(ctx context.Context, id int64) (domain.DeleteOutcome, error)

	List(ctx context.Context, filter OfferFilter) ([]*domain.Offer, error)
	Count(ctx context.Context, filter OfferFilter) (int, error)
}
