package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
)

type logRepository struct {
	db *DB
}

func NewLogRepository(db *DB) repository.LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) FindByID(ctx context.Context, id int64) (*domain.Log, error) {
	query := `SELECT id, table_modifiee, action, date_action, donnees FROM logs WHERE id = $1`
	return scanLog(r.db.QueryRowContext(ctx, query, id))
}

func (r *logRepository) List(ctx context.Context, filter repository.LogFilter) ([]*domain.Log, error) {
	query := `SELECT id, table_modifiee, action, date_action, donnees FROM logs WHERE 1=1`
	where, args := logFilterClause(filter)
	query += where + ` ORDER BY date_action DESC`
	query, args = ApplyPagination(query, args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	logs := []*domain.Log{}
	for rows.Next() {
		log, err := scanLogRow(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating logs: %w", err)
	}
	return logs, nil
}

func (r *logRepository) Count(ctx context.Context, filter repository.LogFilter) (int, error) {
	query := `SELECT COUNT(*) FROM logs WHERE 1=1`
	where, args := logFilterClause(filter)
	query += where

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count logs: %w", err)
	}
	return count, nil
}

func logFilterClause(filter repository.LogFilter) (string, []interface{}) {
	where := ""
	args := []interface{}{}

	if filter.TableName != nil && *filter.TableName != "" {
		where, args = AndEqual(where, args, "table_modifiee", *filter.TableName)
	}

	return where, args
}

func scanLog(row *sql.Row) (*domain.Log, error) {
	var log domain.Log
	var payload []byte

	err := row.Scan(&log.ID, &log.TableName, &log.Action, &log.ActionDate, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan log: %w", err)
	}

	if payload != nil {
		if err := json.Unmarshal(payload, &log.Data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal log payload: %w", err)
		}
	}
	return &log, nil
}

func scanLogRow(rows *sql.Rows) (*domain.Log, error) {
	var log domain.Log
	var payload []byte

	err := rows.Scan(&log.ID, &log.TableName, &log.Action, &log.ActionDate, &payload)
	if err != nil {
		return nil, fmt.Errorf("failed to scan log: %w", err)
	}

	if payload != nil {
		if err := json.Unmarshal(payload, &log.Data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal log payload: %w", err)
		}
	}
	return &log, nil
}
