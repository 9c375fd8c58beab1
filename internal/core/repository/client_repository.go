package repository

import (
	"context"

	"github.com/martijn/wigest/internal/core/domain"
)

type ClientFilter struct {
	Search *string // substring match on nom or email
	Limit  int
	Offset int
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) (domain.DeleteOutcome, error)
	List(ctx context.Context, filter ClientFilter) ([]*domain.Client, error)
	Count(ctx context.Context, filter ClientFilter) (int, error)
}
