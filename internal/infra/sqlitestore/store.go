// Package sqlitestore provides a SQLite implementation of BoardRepository.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/runoshun/todo-iq/internal/domain"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const dateLayout = "2006-01-02"

// List names stored in the tasks table.
const (
	listAgenda   = "agenda"
	listSleepers = "sleepers"
)

const schema = `
CREATE TABLE IF NOT EXISTS frequencies (
	position INTEGER PRIMARY KEY,
	name TEXT UNIQUE NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	list TEXT NOT NULL CHECK (list IN ('agenda', 'sleepers')),
	position INTEGER NOT NULL,
	name TEXT UNIQUE NOT NULL,
	frequency TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	since TEXT NOT NULL,
	until TEXT,
	PRIMARY KEY (list, position)
);
`

// Store implements domain.BoardRepository on a SQLite database file.
// Each call opens its own connection, so a Store holds no resources.
type Store struct {
	path string
}

// New creates a new Store for the given database path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// IsInitialized checks if the database file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates the database and its schema if they don't exist.
func (s *Store) Initialize() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	db, err := sql.Open("sqlite", s.dsn())
	if err != nil {
		return fmt.Errorf("open task db: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *Store) dsn() string {
	return "file:" + s.path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

func (s *Store) open() (*sql.DB, error) {
	if !s.IsInitialized() {
		return nil, domain.ErrNotInitialized
	}
	db, err := sql.Open("sqlite", s.dsn())
	if err != nil {
		return nil, fmt.Errorf("open task db: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Load reads the stored board snapshot.
func (s *Store) Load() (*domain.Snapshot, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	snap := &domain.Snapshot{}
	rows, err := db.Query(`SELECT name FROM frequencies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query frequencies: %w", err)
	}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan frequency: %w", err)
		}
		snap.Ordering = append(snap.Ordering, name)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	if snap.Agenda, err = loadList(db, listAgenda); err != nil {
		return nil, err
	}
	if snap.Sleepers, err = loadList(db, listSleepers); err != nil {
		return nil, err
	}
	return snap, nil
}

func loadList(db *sql.DB, list string) ([]domain.Task, error) {
	rows, err := db.Query(`
		SELECT name, frequency, description, status, since, until
		FROM tasks WHERE list = ? ORDER BY position`, list)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", list, err)
	}
	var tasks []domain.Task
	for rows.Next() {
		var (
			t      domain.Task
			status string
			since  string
			until  sql.NullString
		)
		if err := rows.Scan(&t.Name, &t.Frequency, &t.Description, &status, &since, &until); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan %s task: %w", list, err)
		}
		t.Status = domain.Status(status)
		if t.Since, err = parseDate(since); err != nil {
			rows.Close()
			return nil, fmt.Errorf("task %q: %w", t.Name, err)
		}
		if until.Valid {
			u, err := parseDate(until.String)
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("task %q: %w", t.Name, err)
			}
			t.Until = &u
		}
		tasks = append(tasks, t)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}
	return tasks, nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterate rows: %w", err)
	}
	return rows.Close()
}

// Save replaces every stored row with the snapshot in one transaction.
func (s *Store) Save(snap *domain.Snapshot) (err error) {
	if snap == nil {
		snap = &domain.Snapshot{}
	}
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	if _, err = tx.Exec(`DELETE FROM frequencies`); err != nil {
		return fmt.Errorf("clear frequencies: %w", err)
	}
	if _, err = tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	for i, name := range snap.Ordering {
		if _, err = tx.Exec(`INSERT INTO frequencies (position, name) VALUES (?, ?)`, i, name); err != nil {
			return fmt.Errorf("insert frequency %q: %w", name, err)
		}
	}
	if err = insertList(tx, listAgenda, snap.Agenda); err != nil {
		return err
	}
	if err = insertList(tx, listSleepers, snap.Sleepers); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertList(tx *sql.Tx, list string, tasks []domain.Task) error {
	stmt, err := tx.Prepare(`
		INSERT INTO tasks (list, position, name, frequency, description, status, since, until)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		var until sql.NullString
		if t.Until != nil {
			until = sql.NullString{String: t.Until.Format(dateLayout), Valid: true}
		}
		if _, err := stmt.Exec(list, i, t.Name, t.Frequency, t.Description, string(t.Status),
			t.Since.Format(dateLayout), until); err != nil {
			return fmt.Errorf("insert task %q: %w", t.Name, err)
		}
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// Ensure Store implements the store ports.
var (
	_ domain.BoardRepository  = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
