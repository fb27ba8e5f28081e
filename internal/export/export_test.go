package export

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in      string
		want    Encoding
		wantErr bool
	}{
		{in: "utf-8-sig", want: UTF8BOM},
		{in: "UTF8BOM", want: UTF8BOM},
		{in: "utf-8", want: UTF8},
		{in: " Shift_JIS ", want: ShiftJIS},
		{in: "sjis", want: ShiftJIS},
		{in: "cp932", want: ShiftJIS},
		{in: "latin1", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseEncoding(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseEncoding(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseEncoding(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEncoding(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWriteCSVUTF8BOMRoundTrip(t *testing.T) {
	header := []string{"番号", "メモテキスト"}
	records := [][]string{
		{"1", "Alpha | Beta"},
		{"2", "買い物: 牛乳, パン"},
		{"3", `quoted "text" 😀`},
	}

	var buf bytes.Buffer
	res, err := WriteCSV(&buf, UTF8BOM, header, records)
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if res.Rows != 3 {
		t.Errorf("expected 3 rows, got %d", res.Rows)
	}
	if len(res.Unconvertible) != 0 {
		t.Errorf("UTF-8 output should never report unconvertible cells: %v", res.Unconvertible)
	}

	raw := buf.Bytes()
	if !bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("expected output to start with a UTF-8 BOM, got % x", raw[:3])
	}
	if !bytes.Contains(raw, []byte("\r\n")) {
		t.Errorf("expected CRLF row terminators")
	}

	got, err := ReadCSV(bytes.NewReader(raw), UTF8BOM)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	want := append([][]string{header}, records...)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestWriteCSVPlainUTF8HasNoBOM(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteCSV(&buf, UTF8, []string{"a"}, [][]string{{"b"}}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if buf.String() != "a\r\nb\r\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWriteCSVShiftJIS(t *testing.T) {
	header := []string{"番号", "メモテキスト"}
	records := [][]string{
		{"1", "日本語のメモ"},
		{"2", "emoji 😀 here"},
		{"3", "普通のテキスト"},
	}

	var buf bytes.Buffer
	res, err := WriteCSV(&buf, ShiftJIS, header, records)
	if err != nil {
		t.Fatalf("WriteCSV must not fail on unconvertible content: %v", err)
	}
	if res.Rows != 3 {
		t.Errorf("expected all 3 rows written, got %d", res.Rows)
	}
	if len(res.Unconvertible) != 1 {
		t.Fatalf("expected exactly one unconvertible cell, got %v", res.Unconvertible)
	}
	issue := res.Unconvertible[0]
	if issue.Row != 2 || issue.Column != 2 || issue.Header != "メモテキスト" || issue.Chars != "😀" {
		t.Errorf("unexpected issue: %+v", issue)
	}
	if !strings.Contains(issue.String(), "row 2") {
		t.Errorf("issue string should name the row: %s", issue)
	}

	if bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}) {
		t.Errorf("Shift_JIS output must not carry a UTF-8 BOM")
	}

	got, err := ReadCSV(bytes.NewReader(buf.Bytes()), ShiftJIS)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if got[1][1] != "日本語のメモ" {
		t.Errorf("expected Japanese text to survive, got %q", got[1][1])
	}
	if got[2][1] != "emoji ? here" {
		t.Errorf("expected replacement, got %q", got[2][1])
	}
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo_texts.csv")
	res, err := WriteCSVFile(path, UTF8BOM, []string{"h"}, [][]string{{"v"}})
	if err != nil {
		t.Fatalf("WriteCSVFile failed: %v", err)
	}
	if res.Path != path {
		t.Errorf("expected path %q, got %q", path, res.Path)
	}

	got, err := ReadCSVFile(path, UTF8BOM)
	if err != nil {
		t.Fatalf("ReadCSVFile failed: %v", err)
	}
	if !reflect.DeepEqual(got, [][]string{{"h"}, {"v"}}) {
		t.Errorf("unexpected contents %q", got)
	}
}

func TestStripBOM(t *testing.T) {
	for name, in := range map[string]string{
		"with bom":    "\ufeffhello",
		"without bom": "hello",
	} {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			if _, err := out.ReadFrom(StripBOM(strings.NewReader(in))); err != nil {
				t.Fatalf("read failed: %v", err)
			}
			if out.String() != "hello" {
				t.Errorf("expected %q, got %q", "hello", out.String())
			}
		})
	}
}

func TestFileName(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC)
	if got := FileName("memo_texts", ts); got != "memo_texts_20240309_070501.csv" {
		t.Errorf("unexpected file name %q", got)
	}
}

func TestSafeBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"User", "User"},
		{"notes_v2", "notes_v2"},
		{"メモ", "メモ"},
		{"my table", "my-table"},
		{"a/b", "a-b"},
		{"???", "table"},
	}
	for _, tt := range tests {
		if got := SafeBaseName(tt.in); got != tt.want {
			t.Errorf("SafeBaseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteCSVFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	if _, err := WriteCSVFile(path, UTF8, nil, nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("no file should exist, stat err = %v", err)
	}
}
