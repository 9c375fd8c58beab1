package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// schemaStatements are executed one by one at startup. Every statement is
// idempotent, so bootstrapping an existing database is a no-op.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id SERIAL PRIMARY KEY,
		nom TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS offres (
		id SERIAL PRIMARY KEY,
		nom TEXT NOT NULL UNIQUE,
		debit_mbps INTEGER,
		prix INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS abonnements (
		id SERIAL PRIMARY KEY,
		client_id INTEGER NOT NULL REFERENCES clients(id),
		offre_id INTEGER NOT NULL REFERENCES offres(id),
		date_debut DATE NOT NULL,
		date_fin DATE
	)`,
	`CREATE TABLE IF NOT EXISTS paiements (
		id SERIAL PRIMARY KEY,
		abonnement_id INTEGER NOT NULL REFERENCES abonnements(id),
		montant NUMERIC(10,2) NOT NULL CHECK (montant >= 0),
		date_paiement DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS logs (
		id SERIAL PRIMARY KEY,
		table_modifiee TEXT NOT NULL,
		action TEXT NOT NULL,
		date_action TIMESTAMP NOT NULL DEFAULT now(),
		donnees JSONB
	)`,
	`CREATE INDEX IF NOT EXISTS idx_abonnements_client_id ON abonnements(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_abonnements_offre_id ON abonnements(offre_id)`,
	`CREATE INDEX IF NOT EXISTS idx_abonnements_date_debut ON abonnements(date_debut)`,
	`CREATE INDEX IF NOT EXISTS idx_paiements_abonnement_id ON paiements(abonnement_id)`,
	`CREATE INDEX IF NOT EXISTS idx_paiements_date_paiement ON paiements(date_paiement)`,
	`CREATE INDEX IF NOT EXISTS idx_logs_date_action ON logs(date_action)`,

	// Audit trigger: every mutation of a business table writes a logs row
	// with a JSON snapshot. The application only ever reads logs.
	`CREATE OR REPLACE FUNCTION log_row_change() RETURNS trigger AS $$
	BEGIN
		IF TG_OP = 'DELETE' THEN
			INSERT INTO logs (table_modifiee, action, donnees)
			VALUES (TG_TABLE_NAME, TG_OP, to_jsonb(OLD));
			RETURN OLD;
		END IF;
		INSERT INTO logs (table_modifiee, action, donnees)
		VALUES (TG_TABLE_NAME, TG_OP, to_jsonb(NEW));
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS clients_audit ON clients`,
	`CREATE TRIGGER clients_audit AFTER INSERT OR UPDATE OR DELETE ON clients
		FOR EACH ROW EXECUTE FUNCTION log_row_change()`,
	`DROP TRIGGER IF EXISTS offres_audit ON offres`,
	`CREATE TRIGGER offres_audit AFTER INSERT OR UPDATE OR DELETE ON offres
		FOR EACH ROW EXECUTE FUNCTION log_row_change()`,
	`DROP TRIGGER IF EXISTS abonnements_audit ON abonnements`,
	`CREATE TRIGGER abonnements_audit AFTER INSERT OR UPDATE OR DELETE ON abonnements
		FOR EACH ROW EXECUTE FUNCTION log_row_change()`,
	`DROP TRIGGER IF EXISTS paiements_audit ON paiements`,
	`CREATE TRIGGER paiements_audit AFTER INSERT OR UPDATE OR DELETE ON paiements
		FOR EACH ROW EXECUTE FUNCTION log_row_change()`,
}

type DB struct {
	*sqlx.DB
}

func New(dsn string) (*DB, error) {
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	// Create tables, indexes and the audit trigger
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (duplicate client email or offer name).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// NullString helper for optional string fields
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullInt helper for optional int fields
func NullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// NullTime helper for optional time fields
func NullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
