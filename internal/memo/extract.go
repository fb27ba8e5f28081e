package memo

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/aidanlsb/memokit/internal/export"
)

// ErrInputNotFound indicates the export file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// Extraction is the result of scanning one export.
type Extraction struct {
	// Rows is the number of data rows read (header excluded).
	Rows    int         `json:"rows"`
	Notes   []Note      `json:"notes"`
	Skipped []RowResult `json:"skipped,omitempty"`
}

// Extract reads a CSV export from r. The first record is a header and is
// skipped. Rows the CSV reader rejects are recorded as SkipMalformed and the
// scan continues; only a failure of r itself is returned as an error.
func Extract(r io.Reader) (*Extraction, error) {
	cr := csv.NewReader(export.StripBOM(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	out := &Extraction{}
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			out.Notes = []Note{}
			return out, nil
		}
		var perr *csv.ParseError
		if !errors.As(err, &perr) {
			return nil, fmt.Errorf("reading header: %w", err)
		}
	}

	var results []RowResult
	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, fmt.Errorf("reading row %d: %w", row, err)
			}
			results = append(results, RowResult{Row: row, Skip: SkipMalformed, Detail: perr.Err.Error()})
			continue
		}
		results = append(results, ProcessRow(row, record))
	}

	out.Rows = len(results)
	out.Notes = Aggregate(results)
	for _, res := range results {
		if !res.OK() {
			out.Skipped = append(out.Skipped, res)
		}
	}
	return out, nil
}

// ExtractFile opens path and runs Extract over it. A missing file yields an
// error wrapping ErrInputNotFound.
func ExtractFile(path string) (*Extraction, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Extract(f)
}
