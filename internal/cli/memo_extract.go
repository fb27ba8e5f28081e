package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/memokit/internal/atomicfile"
	"github.com/aidanlsb/memokit/internal/export"
	"github.com/aidanlsb/memokit/internal/memo"
	"github.com/aidanlsb/memokit/internal/ui"
)

// Output file names, relative to the memo output directory.
const (
	memoTextFile    = "memo_texts.txt"
	memoCSVFile     = "memo_texts.csv"
	memoCSVBase     = "memo_texts"
	memoSJISCSVFile = "memo_texts_sjis.csv"
)

// memoSettings are the effective memo options: flags over config over defaults.
type memoSettings struct {
	Input         string
	OutDir        string
	PreviewLength int
}

func resolveMemoSettings(cmd *cobra.Command) memoSettings {
	c := getConfig().Memo
	return memoSettings{
		Input:         flagOr(cmd.Flags(), "input", c.Input),
		OutDir:        flagOr(cmd.Flags(), "out-dir", c.OutDir),
		PreviewLength: intFlagOr(cmd.Flags(), "preview", c.PreviewLength),
	}
}

// memoRunResult is the JSON payload of the writing commands.
type memoRunResult struct {
	Input   string           `json:"input"`
	Rows    int              `json:"rows"`
	Notes   int              `json:"notes"`
	Skipped []memo.RowResult `json:"skipped,omitempty"`
	Files   []*export.Result `json:"files"`
}

// loadNotes runs the extractor over the configured input. When ok is false
// the failure has already been reported and the command should return nil.
func loadNotes(s memoSettings, echo bool) (ext *memo.Extraction, ok bool) {
	ext, err := memo.ExtractFile(s.Input)
	if err != nil {
		if errors.Is(err, memo.ErrInputNotFound) {
			_ = reportError(ErrFileNotFound,
				fmt.Sprintf("エラー: '%s'が見つかりません。", s.Input),
				"Pass --input or set memo.input in the config file")
			return nil, false
		}
		_ = reportError(ErrFileReadError, err.Error(), "")
		return nil, false
	}

	for _, skip := range ext.Skipped {
		slog.Debug("row skipped", "row", skip.Row, "reason", skip.Skip.String(), "detail", skip.Detail)
	}
	slog.Info("extracted notes", "input", s.Input, "rows", ext.Rows, "notes", len(ext.Notes), "skipped", len(ext.Skipped))

	if echo && !isJSONOutput() {
		fmt.Println(ui.Infof("%s からメモテキストを抽出中...", ui.FilePath(s.Input)))
		fmt.Println(ui.Rule())
		for _, n := range ext.Notes {
			fmt.Println(memo.Line(memo.Note{Number: n.Number, Text: memo.Preview(n.Text, s.PreviewLength)}))
		}
		fmt.Println()
		fmt.Println(ui.Successf("抽出完了! 抽出されたメモ数: %d", len(ext.Notes)))
	}
	return ext, true
}

// ensureOutDir creates dir when it does not exist yet.
func ensureOutDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// writeNotesText writes the plain-text listing (UTF-8, no BOM).
func writeNotesText(dir string, notes []memo.Note) (*export.Result, error) {
	path := filepath.Join(dir, memoTextFile)
	err := atomicfile.Write(path, 0o644, func(w io.Writer) error {
		return memo.WriteText(w, notes)
	})
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	slog.Info("wrote file", "path", path, "notes", len(notes))
	return &export.Result{Path: path, Encoding: export.UTF8.String(), Rows: len(notes)}, nil
}

// writeNotesCSV writes the numbered note CSV in enc.
func writeNotesCSV(dir, name string, enc export.Encoding, notes []memo.Note) (*export.Result, error) {
	path := filepath.Join(dir, name)
	res, err := export.WriteCSVFile(path, enc, memo.CSVHeader, memo.CSVRecords(notes))
	if err != nil {
		return nil, err
	}
	slog.Info("wrote file", "path", path, "encoding", res.Encoding, "rows", res.Rows)
	for _, u := range res.Unconvertible {
		slog.Warn("unconvertible characters replaced", "path", path, "row", u.Row, "column", u.Column, "chars", u.Chars)
	}
	return res, nil
}

// unconvertibleWarnings converts replaced cells into JSON warnings.
func unconvertibleWarnings(res *export.Result) []Warning {
	var warnings []Warning
	for _, u := range res.Unconvertible {
		warnings = append(warnings, Warning{
			Code:    ErrUnconvertible,
			Message: fmt.Sprintf("%s: characters not representable in %s were replaced with '?'", u.String(), res.Encoding),
			Details: u,
		})
	}
	return warnings
}

// printUnconvertible reports replaced cells in text mode.
func printUnconvertible(res *export.Result, suggestion string) {
	if len(res.Unconvertible) == 0 || isJSONOutput() {
		return
	}
	fmt.Println(ui.Warningf("%s変換エラー: 一部の文字が変換できません (%d箇所を '?' に置換)", res.Encoding, len(res.Unconvertible)))
	for _, u := range res.Unconvertible {
		fmt.Println(ui.Indent(ui.Hint(u.String())))
	}
	if suggestion != "" {
		fmt.Println(ui.Indent(suggestion))
	}
}
