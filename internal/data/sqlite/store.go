// Package sqlite persists reference tables in a SQLite database so they can
// be edited outside the binary and served through data.Provider.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/louisbranch/chance/internal/data"
	"github.com/louisbranch/chance/internal/data/sqlite/migrations"
	apperrors "github.com/louisbranch/chance/internal/platform/errors"
	"github.com/louisbranch/chance/internal/platform/storage/sqlitemigrate"
)

// Store is a data.Provider backed by SQLite.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open opens the database at path and applies the embedded migrations.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	// One connection keeps in-memory databases coherent.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	migrator, err := sqlitemigrate.New(db, sqlitemigrate.WithLogger(s.logger))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := migrator.Apply(ctx, migrations.FS, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite store: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores value under name, replacing any previous table.
func (s *Store) Put(ctx context.Context, name string, value any) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.New(apperrors.CodeDataInvalid, "table name is required")
	}
	normalized, err := data.Normalize(value)
	if err != nil {
		return err
	}
	body, err := json.Marshal(normalized)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDataInvalid, "encode table", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO reference_tables (name, body, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		name, string(body), s.now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("put table %q: %w", name, err)
	}
	s.logger.Debug("stored reference table", zap.String("table", name), zap.Int("bytes", len(body)))
	return nil
}

// Get loads the named table.
func (s *Store) Get(ctx context.Context, name string) (any, error) {
	var body string
	err := s.db.QueryRowContext(ctx, "SELECT body FROM reference_tables WHERE name = ?", name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.WithMetadata(apperrors.CodeDataNotFound,
			fmt.Sprintf("reference table %q not found", name),
			map[string]string{"table": name})
	}
	if err != nil {
		return nil, fmt.Errorf("get table %q: %w", name, err)
	}

	var value any
	if err := json.Unmarshal([]byte(body), &value); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDataInvalid, fmt.Sprintf("decode table %q", name), err)
	}
	return value, nil
}

// Lookup implements data.Provider.
func (s *Store) Lookup(name string) (any, error) {
	return s.Get(context.Background(), name)
}

// Delete removes the named table. Deleting a missing table is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM reference_tables WHERE name = ?", name); err != nil {
		return fmt.Errorf("delete table %q: %w", name, err)
	}
	return nil
}

// Names lists stored tables in sorted order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM reference_tables ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Import copies the named tables from p into the store in one transaction.
// With no names, every table of a data.Tables provider is copied.
func (s *Store) Import(ctx context.Context, p data.Provider, names ...string) (int, error) {
	if len(names) == 0 {
		tables, ok := p.(data.Tables)
		if !ok {
			return 0, errors.New("import requires table names for this provider")
		}
		names = tables.Names()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	updated := s.now().UTC().UnixMilli()
	for _, name := range names {
		value, err := p.Lookup(name)
		if err != nil {
			return 0, err
		}
		body, err := json.Marshal(value)
		if err != nil {
			return 0, apperrors.Wrap(apperrors.CodeDataInvalid, fmt.Sprintf("encode table %q", name), err)
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO reference_tables (name, body, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
			name, string(body), updated); err != nil {
			return 0, fmt.Errorf("import table %q: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	s.logger.Info("imported reference tables", zap.Int("count", len(names)))
	return len(names), nil
}

var _ data.Provider = (*Store)(nil)
