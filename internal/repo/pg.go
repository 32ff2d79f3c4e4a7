package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgStore is the Postgres implementation of Store. Documents live in the
// kv_store table as jsonb, one row per key.
type pgStore struct {
	db db
}

// NewPgStore constructs a Store backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPgStore(db db) Store {
	return &pgStore{db: db}
}

// Save upserts the versioned document under key, replacing any previous value.
func (s *pgStore) Save(ctx context.Context, key string, value any) error {
	doc, err := seal(value)
	if err != nil {
		return fmt.Errorf("repo.pgStore.Save: %w: %v", domain.ErrPersistence, err)
	}

	const q = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (@key, @value, now())
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = now()`

	if _, err := s.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": doc}); err != nil {
		return fmt.Errorf("repo.pgStore.Save: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// Load reads the document under key into dest. A missing key is not an
// error; dest is simply left as the caller initialized it.
func (s *pgStore) Load(ctx context.Context, key string, dest any) error {
	const q = `SELECT value FROM kv_store WHERE key = @key`

	var raw []byte
	err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("repo.pgStore.Load: %w: %v", domain.ErrPersistence, err)
	}

	if err := unseal(raw, dest); err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			return fmt.Errorf("repo.pgStore.Load: %w", err)
		}
		return fmt.Errorf("repo.pgStore.Load: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}
