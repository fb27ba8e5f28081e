package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/memokit/internal/sqlitedb"
	"github.com/aidanlsb/memokit/internal/ui"
)

// rowSeparator joins cell values in search previews.
const rowSeparator = " | "

var sqliteSearchCmd = &cobra.Command{
	Use:   "search <database> <term>",
	Short: "Search every text column of every table",
	Long: `Search the text columns of every table with SQL LIKE '%term%'.

LIKE ignores case for ASCII letters only; kana, kanji and accented letters
must match exactly. '%' and '_' in the term act as wildcards.

Put -- before a term that starts with '-':

  sqlite2csv plum.sqlite search -- -draft`,
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

		term := args[1]
		hits, err := db.Search(term, nil)
		if err != nil {
			return reportError(ErrDatabaseError, fmt.Sprintf("SQLiteエラー: %v", err), "")
		}
		total := sqlitedb.TotalRows(hits)

		if isJSONOutput() {
			if hits == nil {
				hits = []sqlitedb.SearchHit{}
			}
			outputSuccess(map[string]interface{}{
				"term":  term,
				"hits":  hits,
				"total": total,
			}, &Meta{Count: total})
			return nil
		}

		fmt.Println(ui.Infof("'%s' を検索中...", term))
		fmt.Println(ui.Rule())
		printSearchHits(hits, s.PreviewRows)

		if total == 0 {
			fmt.Printf("'%s' を含むデータは見つかりませんでした。\n", term)
			return nil
		}
		fmt.Println(ui.Successf("合計 %d件のデータが見つかりました。", total))
		return nil
	},
}

// printSearchHits prints each matching column with up to limit rows, and a
// blank line after each table.
func printSearchHits(hits []sqlitedb.SearchHit, limit int) {
	d := getDisplay()
	for i, h := range hits {
		fmt.Printf("テーブル '%s', カラム '%s': %d件\n", ui.AccentBold.Render(h.Table), h.Column, len(h.Rows))

		shown := h.Rows
		if len(shown) > limit {
			shown = shown[:limit]
		}
		for j, row := range shown {
			line := strings.Join(row, rowSeparator)
			if d.IsTTY {
				line = ui.TruncateWithEllipsis(line, d.AvailableWidth(8))
			}
			fmt.Println(ui.Indent(fmt.Sprintf("%d. %s", j+1, line)))
		}
		if rest := len(h.Rows) - len(shown); rest > 0 {
			fmt.Println(ui.Indent(ui.Hint(fmt.Sprintf("... 他 %d件", rest))))
		}

		if i == len(hits)-1 || hits[i+1].Table != h.Table {
			fmt.Println()
		}
	}
}

func init() {
	sqliteRootCmd.AddCommand(sqliteSearchCmd)
}
