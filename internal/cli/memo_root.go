package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	memoInputFlag  string
	memoOutDirFlag string
	memoPreviewLen int
)

var memoRootCmd = &cobra.Command{
	Use:   "memo [command]",
	Short: "Extract note texts from a note app's CSV export",
	Long: `memo reads a note app's export (a CSV file, usually named note.json),
pulls the \id= entry lines out of each note's packed text field, and writes
the joined note texts as plain text or CSV.

Without a command it writes both memo_texts.txt and memo_texts.csv.`,
	Example: `  memo                    # memo_texts.txt and memo_texts.csv
  memo text               # memo_texts.txt only
  memo csv --timestamp    # memo_texts_YYYYMMDD_HHMMSS.csv
  memo csv_sjis           # Shift_JIS CSV for older Excel
  memo search 検索語       # search note texts`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return printMemoUsage(cmd, args[0])
		}
		return runMemoDefault(cmd)
	},
}

// ExecuteMemo runs the memo CLI.
func ExecuteMemo() error {
	return memoRootCmd.Execute()
}

// printMemoUsage reports an unknown command and prints usage. It does not
// fail the process.
func printMemoUsage(cmd *cobra.Command, command string) error {
	if isJSONOutput() {
		outputError(ErrUnknownCommand, fmt.Sprintf("unknown command %q", command), nil, "Run 'memo --help' for usage")
		return nil
	}
	fmt.Println("使用方法:")
	fmt.Print(cmd.UsageString())
	return nil
}

func init() {
	addGlobalFlags(memoRootCmd)
	pf := memoRootCmd.PersistentFlags()
	pf.StringVarP(&memoInputFlag, "input", "i", "note.json", "Export file to read (config: memo.input)")
	pf.StringVarP(&memoOutDirFlag, "out-dir", "o", ".", "Directory for output files (config: memo.out_dir)")
	pf.IntVar(&memoPreviewLen, "preview", 0, "Truncate console previews to N characters (config: memo.preview_length)")

	memoRootCmd.AddCommand(newVersionCmd("memo"))
	memoRootCmd.AddCommand(newConfigCmd())
}
