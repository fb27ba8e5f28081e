package sqlitedb

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aidanlsb/memokit/internal/sqlutil"
)

// ResultSet is a query result with every value rendered as a string, ready
// for CSV output. Stored values pass through unchanged; DATE and DATETIME
// text comes back exactly as it was written.
type ResultSet struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// SelectAll returns every row and column of table.
func (d *DB) SelectAll(table string) (*ResultSet, error) {
	cols, err := d.tableColumns(table)
	if err != nil {
		return nil, err
	}
	return d.query("SELECT " + sqlutil.UntypedColumns(ColumnNames(cols)) + " FROM " + sqlutil.QuoteIdent(table))
}

// SelectColumns returns the named columns of every row of table.
func (d *DB) SelectColumns(table string, columns []string) (*ResultSet, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("no columns selected from %s", table)
	}
	cols, err := d.tableColumns(table)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(cols))
	for _, c := range cols {
		known[strings.ToLower(c.Name)] = true
	}
	for _, name := range columns {
		if !known[strings.ToLower(name)] {
			return nil, fmt.Errorf("%w: %s.%s", ErrColumnNotFound, table, name)
		}
	}
	return d.query("SELECT " + sqlutil.UntypedColumns(columns) + " FROM " + sqlutil.QuoteIdent(table))
}

// SelectTextColumns returns only the text-typed columns of table, as decided
// by IsTextType. The returned columns are empty if the table has none.
func (d *DB) SelectTextColumns(table string) ([]Column, *ResultSet, error) {
	cols, err := d.tableColumns(table)
	if err != nil {
		return nil, nil, err
	}
	text := TextColumns(cols)
	if len(text) == 0 {
		return nil, &ResultSet{}, nil
	}
	rs, err := d.SelectColumns(table, ColumnNames(text))
	if err != nil {
		return nil, nil, err
	}
	return text, rs, nil
}

// tableColumns is Columns for a table that must exist.
func (d *DB) tableColumns(table string) ([]Column, error) {
	if err := d.requireTable(table); err != nil {
		return nil, err
	}
	return d.Columns(table)
}

func (d *DB) query(q string, args ...any) (*ResultSet, error) {
	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading result columns: %w", err)
	}

	rs := &ResultSet{Columns: cols}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row %d: %w", len(rs.Rows)+1, err)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = FormatValue(v)
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return rs, nil
}

// FormatValue renders a driver value as CSV text. NULL becomes the empty
// string; BLOBs are written as raw bytes; REAL values use FormatReal.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return FormatReal(x)
	case bool:
		if x {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(x)
	}
}

// FormatReal prints f in shortest round-trip form, keeping a trailing ".0"
// on integral values so REAL columns stay distinguishable from INTEGER ones:
// 100.0, 0.25, 1e+20, 1.5e-05.
func FormatReal(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	if exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:]); err == nil && (exp < -4 || exp >= 16) {
		return sci
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
