package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/memokit/internal/export"
	"github.com/aidanlsb/memokit/internal/sqlitedb"
	"github.com/aidanlsb/memokit/internal/ui"
)

var sqliteTextCmd = &cobra.Command{
	Use:   "text <database> <table> [columns...]",
	Short: "Export only the text columns of a table",
	Long: `Export the text-typed columns of a table to <table>_text_<timestamp>.csv.

Columns are detected from their declared type (TEXT, VARCHAR, CHAR, CLOB);
name columns explicitly to export exactly those.`,
	Args: cobra.ArbitraryArgs,
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

		table, explicit := args[1], args[2:]

		var rs *sqlitedb.ResultSet
		var err error
		if len(explicit) > 0 {
			rs, err = db.SelectColumns(table, explicit)
		} else {
			var cols []sqlitedb.Column
			cols, rs, err = db.SelectTextColumns(table)
			if err == nil && len(cols) == 0 {
				return reportWarning(ErrNoTextColumns, fmt.Sprintf("テーブル '%s' にテキストカラムが見つかりません。", table))
			}
		}
		if err != nil {
			return reportExportError(table, err)
		}

		printTextf("抽出するテキストカラム: %s", strings.Join(rs.Columns, ", "))
		if len(rs.Rows) == 0 {
			return reportExportError(table, errTableEmpty)
		}
		if err := ensureOutDir(s.OutDir); err != nil {
			return reportError(ErrFileWriteError, err.Error(), "")
		}

		path := filepath.Join(s.OutDir, export.FileName(export.SafeBaseName(table)+"_text", now()))
		res, err := writeResultSet(path, s.Encoding, rs)
		if err != nil {
			return reportError(ErrFileWriteError, err.Error(), "")
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{
				"table":   table,
				"columns": rs.Columns,
				"file":    res,
			}, unconvertibleWarnings(res), &Meta{Count: res.Rows})
			return nil
		}

		fmt.Println(ui.Success("テキストカラムをCSVにエクスポートしました"))
		fmt.Println(ui.Detail("出力ファイル", ui.FilePath(res.Path)))
		fmt.Println(ui.Detail("レコード数", res.Rows))
		printUnconvertible(res, encodingSuggestion)
		return nil
	},
}

func init() {
	sqliteRootCmd.AddCommand(sqliteTextCmd)
}
