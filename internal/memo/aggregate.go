package memo

// Note is one extracted note: the joined entry texts of a single source row.
type Note struct {
	// Number is the 1-based position in the output, assigned by Aggregate.
	Number int `json:"number"`
	// Row is the 1-based data row (header excluded) the note came from.
	Row  int    `json:"row"`
	Text string `json:"text"`
}

// SkipReason explains why a source row produced no note.
type SkipReason int

const (
	SkipNone SkipReason = iota
	// SkipEmptyRow is a record with no columns at all.
	SkipEmptyRow
	// SkipNoEntries is a packed field with no qualifying entry lines.
	SkipNoEntries
	// SkipMalformed is a record the CSV reader could not parse.
	SkipMalformed
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipEmptyRow:
		return "empty_row"
	case SkipNoEntries:
		return "no_entries"
	case SkipMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// MarshalText lets reasons appear by name in JSON output.
func (r SkipReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// RowResult is the outcome of processing one source row: either a note or
// the reason the row was skipped.
type RowResult struct {
	Row    int        `json:"row"`
	Note   Note       `json:"-"`
	Skip   SkipReason `json:"reason"`
	Detail string     `json:"detail,omitempty"`
}

// OK reports whether the row produced a note.
func (r RowResult) OK() bool {
	return r.Skip == SkipNone
}

// ProcessRow runs the packed-field parser over the first column of record.
func ProcessRow(row int, record []string) RowResult {
	if len(record) == 0 {
		return RowResult{Row: row, Skip: SkipEmptyRow}
	}

	entries := ParsePackedField(record[0])
	if len(entries) == 0 {
		return RowResult{Row: row, Skip: SkipNoEntries}
	}

	return RowResult{
		Row:  row,
		Note: Note{Row: row, Text: JoinEntries(entries)},
	}
}

// Aggregate collects the notes of successful results in input order and
// numbers them 1..n by output position. Skipped rows leave no gap.
func Aggregate(results []RowResult) []Note {
	notes := make([]Note, 0, len(results))
	for _, r := range results {
		if !r.OK() {
			continue
		}
		n := r.Note
		n.Number = len(notes) + 1
		notes = append(notes, n)
	}
	return notes
}
