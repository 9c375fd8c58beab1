package repository

import (
	"context"

	"github.com/martijn/wigest/internal/core/domain"
)

type SubscriptionFilter struct {
	ClientID *int64
	OfferID  *int64
	Month    *string // YYYY-MM, matched against date_debut
	Limit    int
	Offset   int
}

type SubscriptionRepository interface {
	// Create inserts the subscription and fills in the generated id plus the
	// denormalized client and offer names from a follow-up read.
	Create(ctx context.Context, sub *domain.Subscription) error

	FindByID(ctx context.Context, id int64) (*domain.Subscription, error)

	// Update writes the full row and refreshes the denormalized names, which
	// may change when the offer reference does.
	Update(ctx context.Context, sub *domain.Subscription) error

	// Delete refuses to remove a subscription that payments still reference.
	// The dependent check and the delete run in one transaction.
	Delete(ctx context.Context, id int64) (domain.DeleteOutcome, error)

	List(ctx context.Context, filter SubscriptionFilter) ([]*domain.Subscription, error)
	Count(ctx context.Context, filter SubscriptionFilter) (int, error)
}
