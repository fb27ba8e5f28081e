package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// defaultSQLiteCommand runs when only a database path is given.
const defaultSQLiteCommand = "inspect"

// databaseFirstArgs rewrites "<database> <command> args..." into the
// "<command> <database> args..." order cobra dispatches on. A lone database
// path becomes "inspect <database>". Arguments that already start with a
// known command (help, version, config, ...) are returned unchanged, as are
// flags and their values.
func databaseFirstArgs(root *cobra.Command, args []string) []string {
	pos := positionalIndexes(root, args, 2)
	if len(pos) == 0 || isSubcommand(root, args[pos[0]]) {
		return args
	}

	out := make([]string, 0, len(args)+1)
	if len(pos) == 1 {
		out = append(out, args[:pos[0]]...)
		out = append(out, defaultSQLiteCommand)
		out = append(out, args[pos[0]:]...)
		return out
	}

	out = append(out, args...)
	out[pos[0]], out[pos[1]] = out[pos[1]], out[pos[0]]
	return out
}

// positionalIndexes returns the indexes of up to limit positional arguments,
// skipping flags and the values of flags that take one.
func positionalIndexes(root *cobra.Command, args []string, limit int) []int {
	var pos []int
	for i := 0; i < len(args) && len(pos) < limit; i++ {
		arg := args[i]
		switch {
		case arg == "--":
			for j := i + 1; j < len(args) && len(pos) < limit; j++ {
				pos = append(pos, j)
			}
			return pos
		case len(arg) > 1 && strings.HasPrefix(arg, "-"):
			if flagTakesValue(root, arg) {
				i++
			}
		default:
			pos = append(pos, i)
		}
	}
	return pos
}

// flagTakesValue reports whether arg is a flag whose value is the next
// argument ("--encoding sjis", "-o out"), as opposed to "--encoding=sjis"
// or a boolean flag.
func flagTakesValue(root *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	if strings.HasPrefix(arg, "--") {
		f = lookupFlag(root, func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(arg[2:]) })
	} else if len(arg) == 2 {
		f = lookupFlag(root, func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(arg[1:]) })
	}
	return f != nil && f.NoOptDefVal == ""
}

func lookupFlag(root *cobra.Command, find func(*pflag.FlagSet) *pflag.Flag) *pflag.Flag {
	if f := find(root.PersistentFlags()); f != nil {
		return f
	}
	for _, sub := range root.Commands() {
		if f := find(sub.Flags()); f != nil {
			return f
		}
	}
	return nil
}

func isSubcommand(root *cobra.Command, name string) bool {
	// Added by cobra during Execute, so not yet in root.Commands().
	if name == "help" || name == "completion" {
		return true
	}
	for _, sub := range root.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return true
		}
	}
	return false
}
