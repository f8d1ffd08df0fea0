package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/docsmd/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/core/ports/driven"
)

// dbFile is the database file name inside the data directory.
const dbFile = "exports.db"

// Store wraps the SQLite database holding the export ledger.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in dataDir.
// If dataDir is empty, defaults to ~/.docsmd/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docsmd", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)

	// WAL lets `docsmd history` read while an export writes.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

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

// ExportStore returns an ExportStore interface backed by this store.
func (s *Store) ExportStore() driven.ExportStore {
	return &exportStore{store: s}
}

// migrate runs all pending migrations and records each applied version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_exports.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("starting migration %s: %w", name, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Export Store ====================

// exportStore implements driven.ExportStore.
type exportStore struct {
	store *Store
}

var _ driven.ExportStore = (*exportStore)(nil)

// Save stores or updates the record for a document.
func (s *exportStore) Save(ctx context.Context, record domain.ExportRecord) error {
	if record.DocumentID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO exports (document_id, revision_id, title, path, html_path, exported_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(document_id) DO UPDATE SET
			revision_id = excluded.revision_id,
			title = excluded.title,
			path = excluded.path,
			html_path = excluded.html_path,
			exported_at = excluded.exported_at
	`, record.DocumentID, record.RevisionID, record.Title, record.Path,
		nullString(record.HTMLPath), unixNanos(record.ExportedAt))
	if err != nil {
		return fmt.Errorf("saving export record: %w", err)
	}
	return nil
}

// Get retrieves the record for a document.
func (s *exportStore) Get(ctx context.Context, documentID string) (*domain.ExportRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT document_id, revision_id, title, path, html_path, exported_at
		FROM exports WHERE document_id = ?
	`, documentID)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning export record: %w", err)
	}
	return record, nil
}

// List returns all records, most recent export first.
func (s *exportStore) List(ctx context.Context) ([]domain.ExportRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT document_id, revision_id, title, path, html_path, exported_at
		FROM exports ORDER BY exported_at DESC, document_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying export records: %w", err)
	}
	defer rows.Close()

	var records []domain.ExportRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning export record: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// Delete removes the record for a document.
func (s *exportStore) Delete(ctx context.Context, documentID string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM exports WHERE document_id = ?", documentID)
	if err != nil {
		return fmt.Errorf("deleting export record: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.ExportRecord, error) {
	var record domain.ExportRecord
	var htmlPath sql.NullString
	var exportedAt int64
	if err := row.Scan(&record.DocumentID, &record.RevisionID, &record.Title,
		&record.Path, &htmlPath, &exportedAt); err != nil {
		return nil, err
	}
	record.HTMLPath = htmlPath.String
	if exportedAt != 0 {
		record.ExportedAt = time.Unix(0, exportedAt).UTC()
	}
	return &record, nil
}

// unixNanos maps the zero time to 0 so it survives a round trip.
func unixNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
