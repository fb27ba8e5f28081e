package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/memokit/internal/export"
	"github.com/aidanlsb/memokit/internal/memo"
	"github.com/aidanlsb/memokit/internal/ui"
)

var memoCSVTimestamp bool

// now is the clock used for timestamped file names.
var now = time.Now

var memoTextCmd = &cobra.Command{
	Use:   "text",
	Short: "Write the note texts to memo_texts.txt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := resolveMemoSettings(cmd)
		ext, ok := loadNotes(s, true)
		if !ok {
			return nil
		}
		if err := ensureOutDir(s.OutDir); err != nil {
			return reportError(ErrFileWriteError, err.Error(), "")
		}

		res, err := writeNotesText(s.OutDir, ext.Notes)
		if err != nil {
			return reportError(ErrFileWriteError, err.Error(), "")
		}

		if isJSONOutput() {
			outputSuccess(newMemoRunResult(s, ext, res), &Meta{Count: len(ext.Notes)})
			return nil
		}
		fmt.Println(ui.Successf("出力ファイル: %s", ui.FilePath(res.Path)))
		return nil
	},
}

var memoCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Write the note texts to memo_texts.csv (UTF-8 with BOM)",
	Long: `Write the note texts to a UTF-8 CSV with a byte-order mark, which
spreadsheet applications open without garbling Japanese text.

With --timestamp the file is named memo_texts_YYYYMMDD_HHMMSS.csv so earlier
exports are never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := memoCSVFile
		if memoCSVTimestamp {
			name = export.FileName(memoCSVBase, now())
		}
		return runMemoCSV(cmd, name, export.UTF8BOM)
	},
}

var memoCSVSJISCmd = &cobra.Command{
	Use:   "csv_sjis",
	Short: "Write the note texts to memo_texts_sjis.csv (Shift_JIS)",
	Long: `Write the note texts to a Shift_JIS CSV for older spreadsheet software.

Characters Shift_JIS cannot represent (emoji, some symbols) are replaced with
'?' and reported by row and column; the rest of the file is still written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMemoCSV(cmd, memoSJISCSVFile, export.ShiftJIS)
	},
}

// runMemoDefault writes memo_texts.txt and memo_texts.csv.
func runMemoDefault(cmd *cobra.Command) error {
	s := resolveMemoSettings(cmd)
	ext, ok := loadNotes(s, true)
	if !ok {
		return nil
	}
	if err := ensureOutDir(s.OutDir); err != nil {
		return reportError(ErrFileWriteError, err.Error(), "")
	}

	textRes, err := writeNotesText(s.OutDir, ext.Notes)
	if err != nil {
		return reportError(ErrFileWriteError, err.Error(), "")
	}
	printTextf("%s", ui.Successf("出力ファイル: %s", ui.FilePath(textRes.Path)))

	results := []*export.Result{textRes}
	if len(ext.Notes) > 0 {
		csvRes, err := writeNotesCSV(s.OutDir, memoCSVFile, export.UTF8BOM, ext.Notes)
		if err != nil {
			return reportError(ErrFileWriteError, err.Error(), "")
		}
		results = append(results, csvRes)
		printTextf("%s", ui.Successf("CSVファイルも作成: %s (BOM付きUTF-8)", ui.FilePath(csvRes.Path)))
	}

	if isJSONOutput() {
		outputSuccess(newMemoRunResult(s, ext, results...), &Meta{Count: len(ext.Notes)})
	}
	return nil
}

func runMemoCSV(cmd *cobra.Command, name string, enc export.Encoding) error {
	s := resolveMemoSettings(cmd)
	ext, ok := loadNotes(s, true)
	if !ok {
		return nil
	}
	if len(ext.Notes) == 0 {
		if isJSONOutput() {
			outputSuccess(newMemoRunResult(s, ext), &Meta{})
			return nil
		}
		fmt.Println(ui.Warning("抽出されたメモがないため、CSVファイルは作成しませんでした。"))
		return nil
	}
	if err := ensureOutDir(s.OutDir); err != nil {
		return reportError(ErrFileWriteError, err.Error(), "")
	}

	res, err := writeNotesCSV(s.OutDir, name, enc, ext.Notes)
	if err != nil {
		return reportError(ErrFileWriteError, err.Error(), "")
	}

	if isJSONOutput() {
		outputSuccessWithWarnings(newMemoRunResult(s, ext, res), unconvertibleWarnings(res), &Meta{Count: len(ext.Notes)})
		return nil
	}

	label := "BOM付きUTF-8"
	if enc == export.ShiftJIS {
		label = "Shift_JIS"
	}
	fmt.Println(ui.Successf("%s CSVファイル: %s", label, ui.FilePath(res.Path)))
	printUnconvertible(res, "BOM付きUTF-8版 (memo csv) をご利用ください")
	return nil
}

func newMemoRunResult(s memoSettings, ext *memo.Extraction, files ...*export.Result) memoRunResult {
	if files == nil {
		files = []*export.Result{}
	}
	return memoRunResult{
		Input:   s.Input,
		Rows:    ext.Rows,
		Notes:   len(ext.Notes),
		Skipped: ext.Skipped,
		Files:   files,
	}
}

func init() {
	memoCSVCmd.Flags().BoolVar(&memoCSVTimestamp, "timestamp", false, "Add a _YYYYMMDD_HHMMSS suffix to the file name")

	memoRootCmd.AddCommand(memoTextCmd)
	memoRootCmd.AddCommand(memoCSVCmd)
	memoRootCmd.AddCommand(memoCSVSJISCmd)
}
