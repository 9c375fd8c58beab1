package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
)

type clientRepository struct {
	db *DB
}

func NewClientRepository(db *DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `INSERT INTO clients (nom, email) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, client.Name, client.Email).Scan(&client.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *clientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := `SELECT id, nom, email FROM clients WHERE id = $1`

	var client domain.Client
	err := r.db.GetContext(ctx, &client, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return &client, nil
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `UPDATE clients SET nom = $1, email = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, client.Name, client.Email, client.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to update client: %w", err)
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

// Delete is unguarded: clients are removed regardless of referencing
// subscriptions, matching the behavior this API has always had.
func (r *clientRepository) Delete(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
	query := `DELETE FROM clients WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return domain.DeleteOutcomeNotFound, fmt.Errorf("failed to delete client: %w", err)
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

func (r *clientRepository) List(ctx context.Context, filter repository.ClientFilter) ([]*domain.Client, error) {
	query := `SELECT id, nom, email FROM clients WHERE 1=1`
	where, args := clientFilterClause(filter)
	query += where + ` ORDER BY id DESC`
	query, args = ApplyPagination(query, args, filter.Limit, filter.Offset)

	clients := []*domain.Client{}
	if err := r.db.SelectContext(ctx, &clients, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (r *clientRepository) Count(ctx context.Context, filter repository.ClientFilter) (int, error) {
	query := `SELECT COUNT(*) FROM clients WHERE 1=1`
	where, args := clientFilterClause(filter)
	query += where

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

func clientFilterClause(filter repository.ClientFilter) (string, []interface{}) {
	where := ""
	args := []interface{}{}

	if filter.Search != nil && *filter.Search != "" {
		where, args = AndSearch(where, args, *filter.Search, "nom", "email")
	}

	return where, args
}
