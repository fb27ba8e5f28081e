package sqlitedb

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/aidanlsb/memokit/internal/sqlutil"
)

// TextTypeKeywords are the declared-type fragments that mark a column as
// holding text. Matching is a substring test on the upper-cased type, so
// "NVARCHAR(40)" and "character varying" both count.
var TextTypeKeywords = []string{"TEXT", "VARCHAR", "CHAR", "CLOB"}

// IsTextType reports whether a declared column type looks like text.
// Columns declared without a type are not text.
func IsTextType(declared string) bool {
	upper := strings.ToUpper(declared)
	for _, kw := range TextTypeKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

// Column is one row of PRAGMA table_info.
type Column struct {
	CID          int    `json:"cid"`
	Name         string `json:"name"`
	DeclaredType string `json:"type"`
	NotNull      bool   `json:"not_null"`
	PrimaryKey   bool   `json:"primary_key"`
	Default      string `json:"default,omitempty"`
	HasDefault   bool   `json:"-"`
}

// IsText reports whether the column's declared type looks like text.
func (c Column) IsText() bool {
	return IsTextType(c.DeclaredType)
}

// TextColumns filters cols down to text-typed columns, keeping order.
func TextColumns(cols []Column) []Column {
	var out []Column
	for _, c := range cols {
		if c.IsText() {
			out = append(out, c)
		}
	}
	return out
}

// ColumnNames returns the names of cols.
func ColumnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

// Columns describes the columns of table. An unknown table yields no columns.
func (d *DB) Columns(table string) ([]Column, error) {
	rows, err := d.db.Query("PRAGMA table_info(" + sqlutil.QuoteIdent(table) + ")")
	if err != nil {
		return nil, fmt.Errorf("reading columns of %s: %w", table, err)
	}
	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (Column, error) {
		var c Column
		var notNull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&c.CID, &c.Name, &c.DeclaredType, &notNull, &dflt, &pk); err != nil {
			return Column{}, err
		}
		c.NotNull = notNull != 0
		c.PrimaryKey = pk != 0
		c.Default, c.HasDefault = dflt.String, dflt.Valid
		return c, nil
	})
}
