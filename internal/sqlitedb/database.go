// Package sqlitedb reads an existing SQLite database for export: it lists
// tables, describes their columns, and pulls rows out as strings.
package sqlitedb

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"

	"github.com/aidanlsb/memokit/internal/sqlutil"
)

var (
	// ErrDatabaseNotFound indicates the database file does not exist.
	ErrDatabaseNotFound = errors.New("database file not found")
	// ErrTableNotFound indicates the named table is not in sqlite_master.
	ErrTableNotFound = errors.New("table not found")
	// ErrColumnNotFound indicates a requested column is not in the table.
	ErrColumnNotFound = errors.New("column not found")
)

// DB is a read-only handle on a SQLite database file.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens the database at path for reading. It never creates a file: a
// missing path yields an error wrapping ErrDatabaseNotFound.
func Open(path string) (*DB, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat database: %w", err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a database file", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection, so the query_only pragma applies to every statement.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA query_only = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{db: db, path: path}, nil
}

// Close releases the database handle.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the file the database was opened from.
func (d *DB) Path() string {
	return d.path
}

// Tables lists the names of all tables in sqlite_master, in creation order.
func (d *DB) Tables() ([]string, error) {
	rows, err := d.db.Query("SELECT name FROM sqlite_master WHERE type = 'table'")
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (string, error) {
		var name string
		err := rows.Scan(&name)
		return name, err
	})
}

// HasTable reports whether table exists.
func (d *DB) HasTable(table string) (bool, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("looking up table %s: %w", table, err)
	}
	return n > 0, nil
}

func (d *DB) requireTable(table string) error {
	ok, err := d.HasTable(table)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	return nil
}

// CountRows returns the number of rows in table.
func (d *DB) CountRows(table string) (int, error) {
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM " + sqlutil.QuoteIdent(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting rows in %s: %w", table, err)
	}
	return n, nil
}

// TableInfo describes one table for inspection.
type TableInfo struct {
	Name     string   `json:"name"`
	Columns  []Column `json:"columns"`
	RowCount int      `json:"row_count"`
}

// Inspect describes every table: its columns and row count.
func (d *DB) Inspect() ([]TableInfo, error) {
	tables, err := d.Tables()
	if err != nil {
		return nil, err
	}

	infos := make([]TableInfo, 0, len(tables))
	for _, name := range tables {
		cols, err := d.Columns(name)
		if err != nil {
			return nil, err
		}
		count, err := d.CountRows(name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, TableInfo{Name: name, Columns: cols, RowCount: count})
	}
	return infos, nil
}
