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

const paymentSelect = `
	SELECT p.id, p.abonnement_id, p.montant, p.date_paiement,
		c.nom AS client_nom, o.nom AS offre_nom
	FROM paiements p
	JOIN abonnements a ON p.abonnement_id = a.id
	JOIN clients c ON a.client_id = c.id
	JOIN offres o ON a.offre_id = o.id
	WHERE 1=1
`

const paymentCount = `
	SELECT COUNT(*)
	FROM paiements p
	JOIN abonnements a ON p.abonnement_id = a.id
	JOIN clients c ON a.client_id = c.id
	JOIN offres o ON a.offre_id = o.id
	WHERE 1=1
`

type paymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO paiements (abonnement_id, montant, date_paiement)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		payment.SubscriptionID,
		payment.Amount,
		payment.PaymentDate,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	if err := fetchPaymentNames(ctx, tx, payment); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	query := paymentSelect + ` AND p.id = $1`

	var payment domain.Payment
	err := r.db.GetContext(ctx, &payment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	return &payment, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE paiements SET montant = $1, date_paiement = $2 WHERE id = $3`
	result, err := tx.ExecContext(ctx, query,
		payment.Amount,
		payment.PaymentDate,
		payment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	if err := fetchPaymentNames(ctx, tx, payment); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
	query := `DELETE FROM paiements WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return domain.DeleteOutcomeNotFound, fmt.Errorf("failed to delete payment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return domain.DeleteOutcomeNotFound, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.DeleteOutcomeNotFound, nil
	}
	return domain.DeleteOutcomeDeleted, nil
}

func (r *paymentRepository) List(ctx context.Context, filter repository.PaymentFilter) ([]*domain.Payment, error) {
	query := paymentSelect
	where, args := paymentFilterClause(filter)
	query += where + ` ORDER BY p.date_paiement DESC`
	query, args = ApplyPagination(query, args, filter.Limit, filter.Offset)

	payments := []*domain.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (r *paymentRepository) Count(ctx context.Context, filter repository.PaymentFilter) (int, error) {
	query := paymentCount
	where, args := paymentFilterClause(filter)
	query += where

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return count, nil
}

func paymentFilterClause(filter repository.PaymentFilter) (string, []interface{}) {
	where := ""
	args := []interface{}{}

	if filter.SubscriptionID != nil {
		where, args = AndEqual(where, args, "p.abonnement_id", *filter.SubscriptionID)
	}
	if filter.ClientID != nil {
		where, args = AndEqual(where, args, "a.client_id", *filter.ClientID)
	}
	if filter.OfferID != nil {
		where, args = AndEqual(where, args, "a.offre_id", *filter.OfferID)
	}
	if filter.Month != nil && *filter.Month != "" {
		where, args = AndMonth(where, args, "p.date_paiement", *filter.Month)
	}

	return where, args
}

// fetchPaymentNames resolves the client and offer names through the payment's
// subscription.
func fetchPaymentNames(ctx context.Context, tx *sqlx.Tx, payment *domain.Payment) error {
	query := `
		SELECT c.nom AS client_nom, o.nom AS offre_nom
		FROM abonnements a
		JOIN clients c ON a.client_id = c.id
		JOIN offres o ON a.offre_id = o.id
		WHERE a.id = $1
	`
	err := tx.QueryRowContext(ctx, query, payment.SubscriptionID).
		Scan(&payment.ClientName, &payment.OfferName)
	if err != nil {
		return fmt.Errorf("failed to fetch payment names: %w", err)
	}
	return nil
}
