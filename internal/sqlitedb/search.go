package sqlitedb

import (
	"github.com/aidanlsb/memokit/internal/sqlutil"
)

// SearchHit is the set of rows of one table whose column matched a term.
type SearchHit struct {
	Table  string `json:"table"`
	Column string `json:"column"`
	*ResultSet
}

// SearchColumn returns the full rows of table whose column contains term.
//
// Matching is SQLite's LIKE: ASCII letters compare case-insensitively,
// everything else (including kana and accented letters) exactly, and '%'
// or '_' inside term act as wildcards.
func (d *DB) SearchColumn(table, column, term string) (*ResultSet, error) {
	cols, err := d.tableColumns(table)
	if err != nil {
		return nil, err
	}
	return d.searchColumn(table, cols, column, term)
}

func (d *DB) searchColumn(table string, cols []Column, column, term string) (*ResultSet, error) {
	q := "SELECT " + sqlutil.UntypedColumns(ColumnNames(cols)) +
		" FROM " + sqlutil.QuoteIdent(table) +
		" WHERE " + sqlutil.QuoteIdent(column) + " LIKE ?"
	return d.query(q, sqlutil.ContainsPattern(term))
}

// Search runs SearchColumn over every text-typed column of the given tables,
// or of all tables when tables is nil. Hits are grouped by table, then
// column, in schema order; columns without matches are omitted.
func (d *DB) Search(term string, tables []string) ([]SearchHit, error) {
	if tables == nil {
		var err error
		if tables, err = d.Tables(); err != nil {
			return nil, err
		}
	}

	var hits []SearchHit
	for _, table := range tables {
		cols, err := d.Columns(table)
		if err != nil {
			return nil, err
		}
		for _, col := range TextColumns(cols) {
			rs, err := d.searchColumn(table, cols, col.Name, term)
			if err != nil {
				return nil, err
			}
			if len(rs.Rows) == 0 {
				continue
			}
			hits = append(hits, SearchHit{Table: table, Column: col.Name, ResultSet: rs})
		}
	}
	return hits, nil
}

// TotalRows sums the matched rows across hits.
func TotalRows(hits []SearchHit) int {
	total := 0
	for _, h := range hits {
		total += len(h.Rows)
	}
	return total
}
