package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/memokit/internal/sqlitedb"
	"github.com/aidanlsb/memokit/internal/ui"
)

var sqliteInspectCmd = &cobra.Command{
	Use:   "inspect <database>",
	Short: "Show tables, column structure and record counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, ok := openDatabase(args[0])
		if !ok {
			return nil
		}
		defer db.Close()

		infos, err := db.Inspect()
		if err != nil {
			return reportError(ErrDatabaseError, fmt.Sprintf("SQLiteエラー: %v", err), "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"database": db.Path(),
				"tables":   infos,
			}, &Meta{Count: len(infos)})
			return nil
		}

		printInspect(db.Path(), infos)
		return nil
	},
}

// printInspect prints the table listing in text mode.
func printInspect(path string, infos []sqlitedb.TableInfo) {
	if len(infos) == 0 {
		fmt.Println(ui.Warning("データベースにテーブルが見つかりませんでした。"))
		return
	}

	fmt.Println(ui.Section(fmt.Sprintf("データベース '%s' のテーブル一覧:", path)))

	for _, info := range infos {
		fmt.Println()
		fmt.Printf("テーブル: %s\n", ui.AccentBold.Render(info.Name))
		fmt.Println(ui.Indent("カラム構造:"))
		fmt.Print(ui.SchemaTable(getDisplay(), schemaRows(info.Columns)))
		fmt.Println(ui.Detail("レコード数", info.RowCount))
	}
}

func schemaRows(cols []sqlitedb.Column) []ui.ColumnRow {
	rows := make([]ui.ColumnRow, len(cols))
	for i, c := range cols {
		row := ui.ColumnRow{Name: c.Name, Type: c.DeclaredType}
		if c.PrimaryKey {
			row.Constraints = append(row.Constraints, "PRIMARY KEY")
		}
		if c.NotNull {
			row.Constraints = append(row.Constraints, "NOT NULL")
		}
		rows[i] = row
	}
	return rows
}

func init() {
	sqliteRootCmd.AddCommand(sqliteInspectCmd)
}
