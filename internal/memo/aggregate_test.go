package memo

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestProcessRow(t *testing.T) {
	t.Run("note from first column", func(t *testing.T) {
		res := ProcessRow(4, []string{"\\id=1 Alpha\n\\id=2 Beta", "ignored"})
		if !res.OK() {
			t.Fatalf("expected OK result, got skip %v", res.Skip)
		}
		if res.Note.Text != "Alpha | Beta" {
			t.Errorf("expected joined text, got %q", res.Note.Text)
		}
		if res.Note.Row != 4 || res.Row != 4 {
			t.Errorf("expected row 4, got note row %d result row %d", res.Note.Row, res.Row)
		}
	})

	t.Run("entries in other columns are ignored", func(t *testing.T) {
		res := ProcessRow(1, []string{"plain", "\\id=1 Alpha"})
		if res.Skip != SkipNoEntries {
			t.Errorf("expected SkipNoEntries, got %v", res.Skip)
		}
	})

	t.Run("empty record", func(t *testing.T) {
		res := ProcessRow(2, nil)
		if res.Skip != SkipEmptyRow {
			t.Errorf("expected SkipEmptyRow, got %v", res.Skip)
		}
	})
}

func TestAggregateNumbersContiguously(t *testing.T) {
	rows := [][]string{
		{"\\id=1 one"},
		{"nothing here"},
		{"\\id=3 three"},
		{""},
		{"\\id=5 five"},
		{"\\id=6 six"},
	}

	var results []RowResult
	for i, r := range rows {
		results = append(results, ProcessRow(i+1, r))
	}

	notes := Aggregate(results)
	if len(notes) != len(rows)-2 {
		t.Fatalf("expected %d notes, got %d", len(rows)-2, len(notes))
	}

	wantText := []string{"one", "three", "five", "six"}
	wantRow := []int{1, 3, 5, 6}
	for i, n := range notes {
		if n.Number != i+1 {
			t.Errorf("note %d: expected number %d, got %d", i, i+1, n.Number)
		}
		if n.Text != wantText[i] {
			t.Errorf("note %d: expected text %q, got %q", i, wantText[i], n.Text)
		}
		if n.Row != wantRow[i] {
			t.Errorf("note %d: expected source row %d, got %d", i, wantRow[i], n.Row)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	notes := Aggregate(nil)
	if len(notes) != 0 {
		t.Fatalf("expected no notes, got %d", len(notes))
	}
}

func TestSkipReasonJSON(t *testing.T) {
	data, err := json.Marshal(RowResult{Row: 3, Skip: SkipNoEntries})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"reason":"no_entries"`) {
		t.Errorf("expected reason by name, got %s", data)
	}
}
