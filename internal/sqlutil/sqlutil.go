// Package sqlutil holds small helpers for building SQLite queries against
// tables whose names are only known at runtime.
package sqlutil

import (
	"database/sql"
	"strings"
)

// QuoteIdent quotes a table or column name for use in SQL text. Embedded
// double quotes are doubled, so any name read from sqlite_master is safe.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// UntypedColumns renders names as a select list of `+"name" AS "name"`
// items. The unary plus strips each column's declared type from the result,
// so the driver hands back DATE, DATETIME and TIMESTAMP values as the stored
// text rather than parsing them into time values.
func UntypedColumns(names []string) string {
	items := make([]string, len(names))
	for i, n := range names {
		q := QuoteIdent(n)
		items[i] = "+" + q + " AS " + q
	}
	return strings.Join(items, ", ")
}

// ContainsPattern returns a LIKE pattern matching values that contain term.
// LIKE wildcards inside term are left active.
func ContainsPattern(term string) string {
	return "%" + term + "%"
}

// ScanRows scans all rows into a slice using the provided scanner.
func ScanRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
