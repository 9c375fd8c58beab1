package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
)

type offerRepository struct {
	db *DB
}

func NewOfferRepository(db *DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) Create(ctx context.Context, offer *domain.Offer) error {
	query := `INSERT INTO offres (nom, debit_mbps, prix) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		offer.Name,
		NullInt(offer.DebitMbps),
		NullInt(offer.Price),
	).Scan(&offer.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

func (r *offerRepository) FindByID(ctx context.Context, id int64) (*domain.Offer, error) {
	query := `SELECT id, nom, debit_mbps, prix FROM offres WHERE id = $1`

	var offer domain.Offer
	err := r.db.GetContext(ctx, &offer, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find offer: %w", err)
	}
	return &offer, nil
}

func (r *offerRepository) Update(ctx context.Context, offer *domain.Offer) error {
	query := `UPDATE offres SET nom = $1, debit_mbps = $2, prix = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		offer.Name,
		NullInt(offer.DebitMbps),
		NullInt(offer.Price),
		offer.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to update offer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete runs the dependent check and the delete in a single serializable
// transaction, so a subscription inserted concurrently cannot slip between
// the check and the delete.
func (r *offerRepository) Delete(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return domain.DeleteOutcomeNotFound, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var dependents int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM abonnements WHERE offre_id = $1`, id,
	).Scan(&dependents)
	if err != nil {
		return domain.DeleteOutcomeNotFound, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	if dependents > 0 {
		return domain.DeleteOutcomeBlocked, nil
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM offres WHERE id = $1`, id)
	if err != nil {
		return domain.DeleteOutcomeNotFound, fmt.Errorf("failed to delete offer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return domain.DeleteOutcomeNotFound, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.DeleteOutcomeNotFound, nil
	}

	if err := tx.Commit(); err != nil {
		return domain.DeleteOutcomeNotFound, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return domain.DeleteOutcomeDeleted, nil
}

func (r *offerRepository) List(ctx context.Context, filter repository.OfferFilter) ([]*domain.Offer, error) {
	query := `SELECT id, nom, debit_mbps, prix FROM offres WHERE 1=1`
	where, args := offerFilterClause(filter)
	query += where + ` ORDER BY id DESC`
	query, args = ApplyPagination(query, args, filter.Limit, filter.Offset)

	offers := []*domain.Offer{}
	if err := r.db.SelectContext(ctx, &offers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

func (r *offerRepository) Count(ctx context.Context, filter repository.OfferFilter) (int, error) {
	query := `SELECT COUNT(*) FROM offres WHERE 1=1`
	where, args := offerFilterClause(filter)
	query += where

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count offers: %w", err)
	}
	return count, nil
}

func offerFilterClause(filter repository.OfferFilter) (string, []interface{}) {
	where := ""
	args := []interface{}{}

	if filter.Search != nil && *filter.Search != "" {
		where, args = AndSearch(where, args, *filter.Search, "nom")
	}

	return where, args
}
