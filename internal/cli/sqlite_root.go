package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/memokit/internal/export"
	"github.com/aidanlsb/memokit/internal/sqlitedb"
	"github.com/aidanlsb/memokit/internal/ui"
)

var (
	sqliteEncodingFlag    string
	sqliteOutDirFlag      string
	sqlitePreviewRowsFlag int
)

var sqliteRootCmd = &cobra.Command{
	Use:   "sqlite2csv <database> [command]",
	Short: "Export SQLite tables to CSV",
	Long: `sqlite2csv inspects a SQLite database and exports its tables to CSV.

The database path comes first, then the command. Without a command the
database structure is shown.`,
	Example: `  sqlite2csv plum.sqlite inspect
  sqlite2csv plum.sqlite export User
  sqlite2csv plum.sqlite export_all
  sqlite2csv plum.sqlite text notes
  sqlite2csv plum.sqlite search 'cssマスター'`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println("使用方法:")
			fmt.Print(cmd.UsageString())
			return nil
		}
		// databaseFirstArgs moved the unrecognized command in front of the
		// database path.
		if len(args) > 1 {
			if _, err := os.Stat(args[1]); err != nil {
				return reportDatabaseNotFound(args[1])
			}
		}
		return reportError(ErrUnknownCommand,
			"無効なコマンドです。使用方法を確認してください。",
			"Run 'sqlite2csv --help' for usage")
	},
}

// ExecuteSQLite runs the sqlite2csv CLI.
func ExecuteSQLite() error {
	sqliteRootCmd.SetArgs(databaseFirstArgs(sqliteRootCmd, os.Args[1:]))
	return sqliteRootCmd.Execute()
}

// sqliteSettings are the effective exporter options.
type sqliteSettings struct {
	Encoding    export.Encoding
	OutDir      string
	PreviewRows int
}

// resolveSQLiteSettings merges flags over config. defaultOutDir is used when
// --out-dir is not given. ok is false when a setting was invalid and the
// problem has been reported.
func resolveSQLiteSettings(cmd *cobra.Command, defaultOutDir string) (s sqliteSettings, ok bool) {
	c := getConfig().SQLite

	name := flagOr(cmd.Flags(), "encoding", c.Encoding)
	enc, err := export.ParseEncoding(name)
	if err != nil {
		_ = reportError(ErrInvalidEncoding, err.Error(), "Use utf-8-sig, utf-8 or shift_jis")
		return s, false
	}

	rows := intFlagOr(cmd.Flags(), "preview-rows", c.SearchPreviewRows)
	if rows < 0 {
		_ = reportError(ErrInvalidInput,
			fmt.Sprintf("--preview-rows must be 0 or greater, got %d", rows), "")
		return s, false
	}

	return sqliteSettings{
		Encoding:    enc,
		OutDir:      flagOr(cmd.Flags(), "out-dir", defaultOutDir),
		PreviewRows: rows,
	}, true
}

// openDatabase opens path for reading. When ok is false the failure has been
// reported and the command should return nil.
func openDatabase(path string) (db *sqlitedb.DB, ok bool) {
	db, err := sqlitedb.Open(path)
	if err != nil {
		if errors.Is(err, sqlitedb.ErrDatabaseNotFound) {
			_ = reportDatabaseNotFound(path)
			return nil, false
		}
		_ = reportError(ErrDatabaseError, fmt.Sprintf("SQLiteエラー: %v", err), "")
		return nil, false
	}
	return db, true
}

func reportDatabaseNotFound(path string) error {
	return reportError(ErrDatabaseNotFound,
		fmt.Sprintf("エラー: データベースファイル '%s' が見つかりません。", path), "")
}

// reportInvalidCommand mirrors the message for a command missing its argument.
func reportInvalidCommand(cmd *cobra.Command) error {
	return reportError(ErrMissingArgument,
		"無効なコマンドです。使用方法を確認してください。",
		fmt.Sprintf("Usage: %s", cmd.UseLine()))
}

// reportWarning prints a warning in text mode, or an error envelope with code
// in JSON mode. Used for outcomes that produce no file but are not faults.
func reportWarning(code, message string) error {
	if isJSONOutput() {
		outputError(code, message, nil, "")
		return nil
	}
	fmt.Println(ui.Warning(message))
	return nil
}

func init() {
	addGlobalFlags(sqliteRootCmd)
	pf := sqliteRootCmd.PersistentFlags()
	pf.StringVar(&sqliteEncodingFlag, "encoding", "utf-8-sig", "CSV encoding: utf-8-sig, utf-8, shift_jis (config: sqlite.encoding)")
	pf.StringVarP(&sqliteOutDirFlag, "out-dir", "o", "", "Directory for CSV files (default: . or sqlite.export_dir for export_all)")
	pf.IntVar(&sqlitePreviewRowsFlag, "preview-rows", 3, "Rows shown per matching column by search (config: sqlite.search_preview_rows)")

	sqliteRootCmd.AddCommand(newVersionCmd("sqlite2csv"))
	sqliteRootCmd.AddCommand(newConfigCmd())
}
