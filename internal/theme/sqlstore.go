package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/currhub/currhub/internal/db"
)

// SQLStore keeps themes in the preferences table.
type SQLStore struct {
	db *db.DB
}

// NewSQLStore creates a Store over an open database.
func NewSQLStore(d *db.DB) *SQLStore {
	return &SQLStore{db: d}
}

func (s *SQLStore) Get(ctx context.Context, visitorID string) (Theme, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`,
		visitorID, Key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return Light, nil
	}
	if err != nil {
		return Light, fmt.Errorf("reading theme: %w", err)
	}
	return Parse(value), nil
}

func (s *SQLStore) Set(ctx context.Context, visitorID string, t Theme) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO visitors (id) VALUES (?)
		 ON CONFLICT(id) DO UPDATE SET last_seen = datetime('now')`,
		visitorID,
	); err != nil {
		return fmt.Errorf("recording visitor: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO preferences (visitor_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(visitor_id, key) DO UPDATE SET value = excluded.value, updated_at = datetime('now')`,
		visitorID, Key, string(t),
	); err != nil {
		return fmt.Errorf("writing theme: %w", err)
	}
	return tx.Commit()
}
