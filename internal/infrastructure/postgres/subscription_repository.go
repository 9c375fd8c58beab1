package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
)

const subscriptionSelect = `
	SELECT a.id, a.client_id, a.offre_id, a.date_debut, a.date_fin,
		c.nom AS client_nom, o.nom AS offre_nom
	FROM abonnements a
	JOIN clients c ON a.client_id = c.id
	JOIN offres o ON a.offre_id = o.id
	WHERE 1=1
`

const subscriptionCount = `
	SELECT COUNT(*)
	FROM abonnements a
	JOIN clients c ON a.client_id = c.id
	JOIN offres o ON a.offre_id = o.id
	WHERE 1=1
`

type subscriptionRepository struct {
	db *DB
}

func NewSubscriptionRepository(db *DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO abonnements (client_id, offre_id, date_debut, date_fin)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		sub.ClientID,
		sub.OfferID,
		sub.StartDate,
		NullTime(sub.EndDate),
	).Scan(&sub.ID)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	// The stored row is authoritative for the denormalized names
	if err := fetchSubscriptionNames(ctx, tx, sub); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	query := subscriptionSelect + ` AND a.id = $1`

	var sub domain.Subscription
	err := r.db.GetContext(ctx, &sub, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}
	return &sub, nil
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE abonnements SET offre_id = $1, date_debut = $2, date_fin = $3 WHERE id = $4`
	result, err := tx.ExecContext(ctx, query,
		sub.OfferID,
		sub.StartDate,
		NullTime(sub.EndDate),
		sub.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	// The offer reference may have changed, so refresh both names
	if err := fetchSubscriptionNames(ctx, tx, sub); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete runs the dependent check and the delete in a single serializable
// transaction, so a payment inserted concurrently cannot slip between the
// check and the delete.
func (r *subscriptionRepository) Delete(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return domain.DeleteOutcomeNotFound, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var dependents int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM paiements WHERE abonnement_id = $1`, id,
	).Scan(&dependents)
	if err != nil {
		return domain.DeleteOutcomeNotFound, fmt.Errorf("failed to count payments: %w", err)
	}
	if dependents > 0 {
		return domain.DeleteOutcomeBlocked, nil
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM abonnements WHERE id = $1`, id)
	if err != nil {
		return domain.DeleteOutcomeNotFound, fmt.Errorf("failed to delete subscription: %w", err)
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

func (r *subscriptionRepository) List(ctx context.Context, filter repository.SubscriptionFilter) ([]*domain.Subscription, error) {
	query := subscriptionSelect
	where, args := subscriptionFilterClause(filter)
	query += where + ` ORDER BY a.date_debut DESC`
	query, args = ApplyPagination(query, args, filter.Limit, filter.Offset)

	subs := []*domain.Subscription{}
	if err := r.db.SelectContext(ctx, &subs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

func (r *subscriptionRepository) Count(ctx context.Context, filter repository.SubscriptionFilter) (int, error) {
	query := subscriptionCount
	where, args := subscriptionFilterClause(filter)
	query += where

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return count, nil
}

func subscriptionFilterClause(filter repository.SubscriptionFilter) (string, []interface{}) {
	where := ""
	args := []interface{}{}

	if filter.ClientID != nil {
		where, args = AndEqual(where, args, "a.client_id", *filter.ClientID)
	}
	if filter.OfferID != nil {
		where, args = AndEqual(where, args, "a.offre_id", *filter.OfferID)
	}
	if filter.Month != nil && *filter.Month != "" {
		where, args = AndMonth(where, args, "a.date_debut", *filter.Month)
	}

	return where, args
}

func fetchSubscriptionNames(ctx context.Context, tx *sqlx.Tx, sub *domain.Subscription) error {
	query := `
		SELECT c.nom AS client_nom, o.nom AS offre_nom
		FROM clients c, offres o
		WHERE c.id = $1 AND o.id = $2
	`
	err := tx.QueryRowContext(ctx, query, sub.ClientID, sub.OfferID).
		Scan(&sub.ClientName, &sub.OfferName)
	if err != nil {
		return fmt.Errorf("failed to fetch subscription names: %w", err)
	}
	return nil
}
