package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aidanlsb/memokit/internal/atomicfile"
)

// Unconvertible records a cell holding characters the output encoding
// cannot represent. The cell is still written, with those characters
// replaced by '?'.
type Unconvertible struct {
	// Row is the 1-based data row; 0 means the header row.
	Row int `json:"row"`
	// Column is 1-based.
	Column int    `json:"column"`
	Header string `json:"header,omitempty"`
	Chars  string `json:"chars"`
}

func (u Unconvertible) String() string {
	col := fmt.Sprintf("%d", u.Column)
	if u.Header != "" {
		col = fmt.Sprintf("%d (%s)", u.Column, u.Header)
	}
	return fmt.Sprintf("row %d, column %s: %q", u.Row, col, u.Chars)
}

// CSVWriter writes CSV records in a chosen encoding. Rows are terminated
// with CRLF, which is what spreadsheet applications expect.
type CSVWriter struct {
	enc    Encoding
	sink   io.WriteCloser
	csv    *csv.Writer
	header []string
	row    int
	issues []Unconvertible
}

// NewCSVWriter returns a writer encoding its output as enc onto w.
func NewCSVWriter(w io.Writer, enc Encoding) *CSVWriter {
	sink := enc.NewWriter(w)
	cw := csv.NewWriter(sink)
	cw.UseCRLF = true
	return &CSVWriter{enc: enc, sink: sink, csv: cw}
}

// WriteHeader writes the header row. Header names are used when reporting
// unconvertible cells.
func (w *CSVWriter) WriteHeader(header []string) error {
	w.header = header
	return w.csv.Write(w.convert(0, header))
}

// Write writes one data row.
func (w *CSVWriter) Write(record []string) error {
	w.row++
	return w.csv.Write(w.convert(w.row, record))
}

// Close flushes all buffered output. It does not close the underlying writer.
func (w *CSVWriter) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	return w.sink.Close()
}

// Rows returns the number of data rows written.
func (w *CSVWriter) Rows() int {
	return w.row
}

// Unconvertible returns every cell that lost characters in conversion.
func (w *CSVWriter) Unconvertible() []Unconvertible {
	return w.issues
}

func (w *CSVWriter) convert(row int, record []string) []string {
	if !w.enc.Legacy() {
		return record
	}

	out := record
	copied := false
	for i, cell := range record {
		bad := w.enc.unrepresentable(cell)
		if len(bad) == 0 {
			continue
		}
		if !copied {
			out = append([]string(nil), record...)
			copied = true
		}
		out[i] = replaceUnrepresentable(cell, bad)

		issue := Unconvertible{Row: row, Column: i + 1, Chars: string(bad)}
		if row > 0 && i < len(w.header) {
			issue.Header = w.header[i]
		}
		w.issues = append(w.issues, issue)
	}
	return out
}

// Result summarizes one written file.
type Result struct {
	Path          string          `json:"path"`
	Encoding      string          `json:"encoding"`
	Rows          int             `json:"rows"`
	Unconvertible []Unconvertible `json:"unconvertible,omitempty"`
}

// WriteCSV writes header and records to w in encoding enc.
func WriteCSV(w io.Writer, enc Encoding, header []string, records [][]string) (*Result, error) {
	cw := NewCSVWriter(w, enc)
	if header != nil {
		if err := cw.WriteHeader(header); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", cw.Rows(), err)
		}
	}
	if err := cw.Close(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return &Result{
		Encoding:      enc.String(),
		Rows:          cw.Rows(),
		Unconvertible: cw.Unconvertible(),
	}, nil
}

// WriteCSVFile writes a CSV file atomically. The file only appears under
// path once every row has been written.
func WriteCSVFile(path string, enc Encoding, header []string, records [][]string) (*Result, error) {
	var res *Result
	err := atomicfile.Write(path, 0o644, func(w io.Writer) error {
		var err error
		res, err = WriteCSV(w, enc, header, records)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	res.Path = path
	return res, nil
}

// ReadCSV reads every record of a CSV stream encoded as enc. Rows may have
// differing field counts.
func ReadCSV(r io.Reader, enc Encoding) ([][]string, error) {
	cr := csv.NewReader(enc.NewReader(r))
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// ReadCSVFile opens path and reads it with ReadCSV.
func ReadCSVFile(path string, enc Encoding) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f, enc)
}

// TimestampLayout formats the suffix of generated file names.
const TimestampLayout = "20060102_150405"

// FileName returns "<base>_<timestamp>.csv".
func FileName(base string, ts time.Time) string {
	return fmt.Sprintf("%s_%s.csv", base, ts.Format(TimestampLayout))
}
