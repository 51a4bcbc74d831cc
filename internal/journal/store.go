package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"uipathctl/internal/config"
	"uipathctl/internal/orchestrator"
)

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond

	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// ErrDisabled is returned by Open when the journal is switched off in config.
var ErrDisabled = errors.New("journal disabled")

// Entry is one recorded call.
type Entry struct {
	ID         int64         `json:"id"`
	RequestID  string        `json:"request_id"`
	Operation  string        `json:"operation"`
	Method     string        `json:"method"`
	Path       string        `json:"path"`
	FolderID   string        `json:"folder_id,omitempty"`
	StatusCode int           `json:"status_code"`
	Duration   time.Duration `json:"duration"`
	Error      string        `json:"error,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
}

// OperationCount aggregates calls per operation.
type OperationCount struct {
	Operation string `json:"operation"`
	Calls     int64  `json:"calls"`
	Failures  int64  `json:"failures"`
}

// Store is the SQLite-backed call journal.
type Store struct {
	db   *sql.DB
	path string
}

var _ orchestrator.Recorder = (*Store)(nil)

// Open opens the journal configured in cfg.
func Open(cfg *config.Config) (*Store, error) {
	if cfg == nil || !cfg.Journal.Enabled {
		return nil, ErrDisabled
	}
	return OpenPath(cfg.Journal.Path)
}

// OpenPath opens or creates a journal database at path.
func OpenPath(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("journal path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure journal directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordCall appends a call to the journal.
func (s *Store) RecordCall(ctx context.Context, call orchestrator.Call) error {
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO calls (request_id, operation, method, path, folder_id, status_code, duration_ms, error, started_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			call.RequestID,
			call.Operation,
			call.Method,
			call.Path,
			call.FolderID,
			call.StatusCode,
			call.Duration.Milliseconds(),
			call.Err,
			call.StartedAt.UTC().Format(timeLayout),
		)
		if err != nil {
			return fmt.Errorf("insert call: %w", err)
		}
		return nil
	})
}

// Recent returns up to limit entries, newest first. An empty operation matches all.
func (s *Store) Recent(ctx context.Context, limit int, operation string) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, request_id, operation, method, path, folder_id, status_code, duration_ms, error, started_at
		FROM calls`
	args := []any{}
	if operation = strings.TrimSpace(operation); operation != "" {
		query += " WHERE operation = ?"
		args = append(args, operation)
	}
	query += " ORDER BY started_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query calls: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry      Entry
			durationMS int64
			startedAt  string
		)
		if err := rows.Scan(&entry.ID, &entry.RequestID, &entry.Operation, &entry.Method, &entry.Path,
			&entry.FolderID, &entry.StatusCode, &durationMS, &entry.Error, &startedAt); err != nil {
			return nil, fmt.Errorf("scan call: %w", err)
		}
		entry.Duration = time.Duration(durationMS) * time.Millisecond
		if parsed, err := time.Parse(timeLayout, startedAt); err == nil {
			entry.StartedAt = parsed
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calls: %w", err)
	}
	return entries, nil
}

// CountByOperation summarises the journal per operation, busiest first.
func (s *Store) CountByOperation(ctx context.Context) ([]OperationCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT operation, COUNT(1), SUM(CASE WHEN error != '' THEN 1 ELSE 0 END)
		 FROM calls GROUP BY operation ORDER BY COUNT(1) DESC, operation`)
	if err != nil {
		return nil, fmt.Errorf("count calls: %w", err)
	}
	defer rows.Close()

	var counts []OperationCount
	for rows.Next() {
		var count OperationCount
		if err := rows.Scan(&count.Operation, &count.Calls, &count.Failures); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts = append(counts, count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return counts, nil
}

// Prune deletes entries that started before cutoff and returns how many were removed.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	err := retryOnBusy(ctx, func() error {
		res, err := s.db.ExecContext(ctx, "DELETE FROM calls WHERE started_at < ?", cutoff.UTC().Format(timeLayout))
		if err != nil {
			return fmt.Errorf("prune calls: %w", err)
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, err
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
