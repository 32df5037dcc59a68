package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.TraceStore = (*Store)(nil)

// DefaultFileName is the database file created inside the data directory.
const DefaultFileName = "traces.db"

// Store persists ask traces in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.assist/data/traces.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".assist", "data")
	}
	return Open(filepath.Join(dataDir, DefaultFileName))
}

// Open creates or opens the database file at dbPath.
func Open(dbPath string) (*Store, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations, each in its own transaction.
func (s *Store) migrate(fsys fs.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	pending, err := migrations.Pending(fsys, currentVersion)
	if err != nil {
		return err
	}
	for _, m := range pending {
		if err := s.apply(m.Version, m.SQL); err != nil {
			return fmt.Errorf("executing migration %s: %w", m.Name, err)
		}
	}

	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(script); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Save stores a trace. Saving an existing ID replaces it.
func (s *Store) Save(ctx context.Context, trace domain.Trace) error {
	if trace.ID == "" {
		return fmt.Errorf("%w: trace id is empty", domain.ErrInvalidInput)
	}
	if trace.CreatedAt.IsZero() {
		trace.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO ask_traces
			(id, question, locale, intent, route, confidence, kb_chunks, provider, model, latency_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		trace.ID,
		trace.Question,
		string(trace.Locale),
		string(trace.Intent),
		string(trace.Route),
		trace.Confidence,
		trace.KBChunks,
		trace.Provider,
		trace.Model,
		trace.LatencyMs,
		trace.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("saving trace: %w", err)
	}
	return nil
}

// List returns traces newest first. limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]domain.Trace, error) {
	query := `
		SELECT id, question, locale, intent, route, confidence, kb_chunks, provider, model, latency_ms, created_at
		FROM ask_traces
		ORDER BY created_at DESC, id ASC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying traces: %w", err)
	}
	defer rows.Close()

	var traces []domain.Trace
	for rows.Next() {
		var (
			t                     domain.Trace
			locale, intent, route string
			createdAt             int64
		)
		if err := rows.Scan(
			&t.ID, &t.Question, &locale, &intent, &route, &t.Confidence,
			&t.KBChunks, &t.Provider, &t.Model, &t.LatencyMs, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning trace: %w", err)
		}
		t.Locale = domain.Locale(locale)
		t.Intent = domain.Intent(intent)
		t.Route = domain.Route(route)
		t.CreatedAt = time.Unix(0, createdAt).UTC()
		traces = append(traces, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating traces: %w", err)
	}
	return traces, nil
}

// CountByIntent aggregates stored traces per intent.
func (s *Store) CountByIntent(ctx context.Context) (map[domain.Intent]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT intent, COUNT(*) FROM ask_traces GROUP BY intent")
	if err != nil {
		return nil, fmt.Errorf("counting traces: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Intent]int)
	for rows.Next() {
		var (
			intent string
			n      int
		)
		if err := rows.Scan(&intent, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[domain.Intent(intent)] = n
	}
	return counts, rows.Err()
}
