package repository

import (
	"context"

	"github.com/martijn/wigest/internal/core/domain"
)

type PaymentFilter struct {
	SubscriptionID *int64
	ClientID       *int64
	OfferID        *int64
	Month          *string // YYYY-MM, matched against date_paiement
	Limit          int
	Offset         int
}

type PaymentRepository interface {
	// Create inserts the payment and fills in the generated id plus the
	// denormalized client and offer names from a follow-up read.
	Create(ctx context.Context, payment *domain.Payment) error

	FindByID(ctx context.Context, id int64) (*domain.Payment, error)

	// Update writes the full row and refreshes the denormalized names.
	Update(ctx context.Context, payment *domain.Payment) error

	Delete(ctx context.Context, id int64) (domain.DeleteOutcome, error)
	List(ctx context.Context, filter PaymentFilter) ([]*domain.Payment, error)
	Count(ctx context.Context, filter PaymentFilter) (int, error)
}
