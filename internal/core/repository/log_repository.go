package repository

import (
	"context"

	"github.com/martijn/wigest/internal/core/domain"
)

type LogFilter struct {
	TableName *string // exact match on table_modifiee
	Limit     int
	Offset    int
}

// LogRepository is read-only: audit rows are written by the database trigger.
type LogRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Log, error)
	List(ctx context.Context, filter LogFilter) ([]*domain.Log, error)
	Count(ctx context.Context, filter LogFilter) (int, error)
}
