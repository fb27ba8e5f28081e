package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/memokit/internal/export"
	"github.com/aidanlsb/memokit/internal/sqlitedb"
	"github.com/aidanlsb/memokit/internal/ui"
)

// errTableEmpty marks a table with no rows; nothing is written for it.
var errTableEmpty = errors.New("table has no data")

const encodingSuggestion = "--encoding utf-8-sig (BOM付きUTF-8) をご利用ください"

var sqliteExportCmd = &cobra.Command{
	Use:   "export <database> <table>",
	Short: "Export one table to <table>_<timestamp>.csv",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return reportInvalidCommand(cmd)
		}
		s, ok := resolveSQLiteSettings(cmd, ".")
		if !ok {
			return nil
		}
		db, ok := openDatabase(args[0])
		if !ok {
			return nil
		}
		defer db.Close()

		table := args[1]
		if err := ensureOutDir(s.OutDir); err != nil {
			return reportError(ErrFileWriteError, err.Error(), "")
		}

		res, err := exportTable(db, table, s)
		if err != nil {
			return reportExportError(table, err)
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(tableExport{Table: table, Result: res}, unconvertibleWarnings(res), &Meta{Count: res.Rows})
			return nil
		}
		printExported(table, res)
		return nil
	},
}

var sqliteExportAllCmd = &cobra.Command{
	Use:   "export_all <database>",
	Short: "Export every table into a directory (default csv_exports)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ok := resolveSQLiteSettings(cmd, getConfig().SQLite.ExportDir)
		if !ok {
			return nil
		}
		db, ok := openDatabase(args[0])
		if !ok {
			return nil
		}
		defer db.Close()

		if _, err := os.Stat(s.OutDir); errors.Is(err, os.ErrNotExist) {
			if err := os.MkdirAll(s.OutDir, 0o755); err != nil {
				return reportError(ErrFileWriteError, fmt.Sprintf("failed to create output directory: %v", err), "")
			}
			printTextf("%s", ui.Infof("出力ディレクトリを作成: %s", ui.FilePath(s.OutDir)))
		}

		infos, err := db.Inspect()
		if err != nil {
			return reportError(ErrDatabaseError, fmt.Sprintf("SQLiteエラー: %v", err), "")
		}
		if !isJSONOutput() {
			printInspect(db.Path(), infos)
		}
		if len(infos) == 0 {
			if isJSONOutput() {
				outputError(ErrNoTables, "データベースにテーブルが見つかりませんでした。", nil, "")
			}
			return nil
		}

		summary := exportAllSummary{OutDir: s.OutDir, Total: len(infos)}
		var warnings []Warning

		var progress *ui.Progress
		if !isJSONOutput() {
			fmt.Println()
			fmt.Println(ui.Section("すべてのテーブルをCSVにエクスポート中..."))
			progress = ui.NewProgress(os.Stdout, "exporting", len(infos))
		}

		for _, info := range infos {
			res, err := exportTable(db, info.Name, s)
			entry := tableExport{Table: info.Name, Result: res}
			if err != nil {
				entry.Error = err.Error()
			} else {
				summary.Succeeded++
				warnings = append(warnings, unconvertibleWarnings(res)...)
			}
			summary.Tables = append(summary.Tables, entry)

			if progress != nil {
				progress.Clear()
				if err != nil {
					_ = reportExportError(info.Name, err)
				} else {
					printExported(info.Name, res)
				}
				fmt.Println()
				progress.Increment()
			}
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(summary, warnings, &Meta{Count: summary.Succeeded})
			return nil
		}
		progress.DoneWithMessage(ui.Successf("完了: %d/%d テーブルをエクスポートしました", summary.Succeeded, summary.Total))
		return nil
	},
}

// tableExport is the JSON form of one exported table.
type tableExport struct {
	Table string `json:"table"`
	*export.Result
	Error string `json:"error,omitempty"`
}

type exportAllSummary struct {
	OutDir    string        `json:"out_dir"`
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Tables    []tableExport `json:"tables"`
}

// exportTable writes every row of table to <table>_<timestamp>.csv in
// s.OutDir. An empty table yields errTableEmpty and no file.
func exportTable(db *sqlitedb.DB, table string, s sqliteSettings) (*export.Result, error) {
	rs, err := db.SelectAll(table)
	if err != nil {
		return nil, err
	}
	if len(rs.Rows) == 0 {
		return nil, errTableEmpty
	}

	path := filepath.Join(s.OutDir, export.FileName(export.SafeBaseName(table), now()))
	return writeResultSet(path, s.Encoding, rs)
}

func writeResultSet(path string, enc export.Encoding, rs *sqlitedb.ResultSet) (*export.Result, error) {
	res, err := export.WriteCSVFile(path, enc, rs.Columns, rs.Rows)
	if err != nil {
		return nil, err
	}
	slog.Info("wrote file", "path", path, "encoding", res.Encoding, "rows", res.Rows)
	for _, u := range res.Unconvertible {
		slog.Warn("unconvertible characters replaced", "path", path, "row", u.Row, "column", u.Column, "chars", u.Chars)
	}
	return res, nil
}

// reportExportError reports why a table produced no file.
func reportExportError(table string, err error) error {
	switch {
	case errors.Is(err, errTableEmpty):
		return reportWarning(ErrTableEmpty, fmt.Sprintf("テーブル '%s' にデータがありません。", table))
	case errors.Is(err, sqlitedb.ErrTableNotFound):
		return reportError(ErrTableNotFound, fmt.Sprintf("テーブル '%s' が見つかりません。", table), "Run 'sqlite2csv <database> inspect' to list tables")
	default:
		return reportError(ErrDatabaseError, fmt.Sprintf("SQLiteエラー: %v", err), "")
	}
}

func printExported(table string, res *export.Result) {
	fmt.Println(ui.Successf("テーブル '%s' をCSVにエクスポートしました", table))
	fmt.Println(ui.Detail("出力ファイル", ui.FilePath(res.Path)))
	fmt.Println(ui.Detail("レコード数", res.Rows))
	printUnconvertible(res, encodingSuggestion)
}

func init() {
	sqliteRootCmd.AddCommand(sqliteExportCmd)
	sqliteRootCmd.AddCommand(sqliteExportAllCmd)
}
