package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/memokit/internal/memo"
	"github.com/aidanlsb/memokit/internal/ui"
)

var memoSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search note texts (case-insensitive)",
	Long: `Print every note whose text contains the term, ignoring case.
Notes keep the numbers they have in memo_texts.txt. Put -- before a term
that starts with '-':

  memo search -- -draft`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return printMemoUsage(cmd.Root(), "search")
		}
		term := args[0]

		s := resolveMemoSettings(cmd)
		ext, ok := loadNotes(s, false)
		if !ok {
			return nil
		}

		hits := memo.Search(ext.Notes, term)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"term":  term,
				"notes": len(ext.Notes),
				"hits":  hits,
			}, &Meta{Count: len(hits)})
			return nil
		}

		fmt.Println(ui.Infof("'%s' を含むメモを検索中...", term))
		fmt.Println(ui.Rule())
		for _, n := range hits {
			fmt.Printf("🎯 %s\n", memo.Line(n))
		}

		if len(hits) == 0 {
			fmt.Printf("'%s' を含むメモは見つかりませんでした。\n", term)
			return nil
		}
		fmt.Println()
		fmt.Println(ui.Successf("%d件のメモが見つかりました。", len(hits)))
		return nil
	},
}

func init() {
	memoRootCmd.AddCommand(memoSearchCmd)
}
