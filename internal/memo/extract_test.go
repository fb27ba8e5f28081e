package memo

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeExport(t *testing.T, bom bool, rows ...[]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	if bom {
		buf.WriteString("\ufeff")
	}
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Text", "Created"}); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write rows: %v", err)
	}
	return buf.Bytes()
}

func TestExtract(t *testing.T) {
	data := writeExport(t, false,
		[]string{"\\id=1 Alpha\n\\id=2 Beta\nnot-a-marker line\n\\id=3   ", "2024-01-01"},
		[]string{"no entries at all", "2024-01-02"},
		[]string{"\\id=9 Gamma", "2024-01-03"},
		[]string{"", "2024-01-04"},
		[]string{"\\id=x 日本語のメモ", "2024-01-05"},
	)

	ext, err := Extract(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if ext.Rows != 5 {
		t.Errorf("expected 5 data rows, got %d", ext.Rows)
	}

	want := []Note{
		{Number: 1, Row: 1, Text: "Alpha | Beta"},
		{Number: 2, Row: 3, Text: "Gamma"},
		{Number: 3, Row: 5, Text: "日本語のメモ"},
	}
	if len(ext.Notes) != len(want) {
		t.Fatalf("expected %d notes, got %d: %+v", len(want), len(ext.Notes), ext.Notes)
	}
	for i := range want {
		if ext.Notes[i] != want[i] {
			t.Errorf("note %d: expected %+v, got %+v", i, want[i], ext.Notes[i])
		}
	}

	if len(ext.Skipped) != 2 {
		t.Fatalf("expected 2 skipped rows, got %d", len(ext.Skipped))
	}
	for _, s := range ext.Skipped {
		if s.Skip != SkipNoEntries {
			t.Errorf("row %d: expected SkipNoEntries, got %v", s.Row, s.Skip)
		}
	}
}

func TestExtractToleratesBOM(t *testing.T) {
	data := writeExport(t, true, []string{"\\id=1 first", "x"})

	ext, err := Extract(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(ext.Notes) != 1 || ext.Notes[0].Text != "first" {
		t.Fatalf("unexpected notes: %+v", ext.Notes)
	}
}

func TestExtractHeaderOnlyAndEmpty(t *testing.T) {
	for name, input := range map[string]string{
		"empty":       "",
		"header only": "Text,Created\n",
	} {
		t.Run(name, func(t *testing.T) {
			ext, err := Extract(strings.NewReader(input))
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}
			if len(ext.Notes) != 0 {
				t.Errorf("expected no notes, got %d", len(ext.Notes))
			}
		})
	}
}

func TestExtractVariableFieldCounts(t *testing.T) {
	input := "Text\n\"\\id=1 one\",extra,columns\n\"\\id=2 two\"\n"
	ext, err := Extract(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(ext.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %+v", ext.Notes)
	}
}

func TestExtractLenientQuotes(t *testing.T) {
	// A bare quote in an unquoted field and an unterminated quoted field at
	// EOF are read as text instead of being skipped.
	input := "Text\n\\id=1 say \"hi\" there\n\"\\id=2 open quote\n"
	ext, err := Extract(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(ext.Skipped) != 0 {
		t.Errorf("expected no skipped rows, got %+v", ext.Skipped)
	}
	want := []string{`say "hi" there`, "open quote"}
	if len(ext.Notes) != len(want) {
		t.Fatalf("expected %d notes, got %+v", len(want), ext.Notes)
	}
	for i, n := range ext.Notes {
		if n.Text != want[i] {
			t.Errorf("note %d = %q, want %q", i+1, n.Text, want[i])
		}
	}
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestExtractReadError(t *testing.T) {
	errDisk := errors.New("disk went away")
	r := &failingReader{data: []byte("Text\n\"\\id=1 one\"\n"), err: errDisk}

	_, err := Extract(r)
	if !errors.Is(err, errDisk) {
		t.Fatalf("expected the read error to be returned, got %v", err)
	}
}

func TestExtractFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ExtractFile(filepath.Join(t.TempDir(), "note.json"))
		if !errors.Is(err, ErrInputNotFound) {
			t.Fatalf("expected ErrInputNotFound, got %v", err)
		}
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "note.json")
		if err := os.WriteFile(path, writeExport(t, false, []string{"\\id=1 hello"}), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		ext, err := ExtractFile(path)
		if err != nil {
			t.Fatalf("ExtractFile failed: %v", err)
		}
		if len(ext.Notes) != 1 || ext.Notes[0].Text != "hello" {
			t.Fatalf("unexpected notes: %+v", ext.Notes)
		}
	})
}
