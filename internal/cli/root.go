package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aidanlsb/memokit/internal/config"
	"github.com/aidanlsb/memokit/internal/logging"
	"github.com/aidanlsb/memokit/internal/ui"
)

var (
	// Global flags
	configPath   string
	logLevelFlag string

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
	display            *ui.DisplayContext
)

// addGlobalFlags registers the flags both binaries share.
func addGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to config file")
	pf.StringVar(&logLevelFlag, "log-level", "", "Log level on stderr: debug, info, warn, error")
	pf.BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
	cmd.SetFlagErrorFunc(reportFlagError)
}

// reportFlagError reports a flag parse failure and ends the command normally.
// The usual cause is a search term starting with '-'.
func reportFlagError(cmd *cobra.Command, err error) error {
	return reportError(ErrInvalidInput, err.Error(),
		fmt.Sprintf("Put -- before arguments that start with '-': %s", cmd.UseLine()))
}

// loadSettings loads the config file, then configures logging and theming.
// It runs before every command.
func loadSettings(cmd *cobra.Command) error {
	loaded, exists, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded

	resolvedConfigPath = configPath
	if strings.TrimSpace(resolvedConfigPath) == "" {
		resolvedConfigPath = config.DefaultPath()
	}

	logging.Setup(flagOr(cmd.Flags(), "log-level", cfg.Log.Level), cfg.Log.Format)
	slog.Debug("config loaded", "path", resolvedConfigPath, "exists", exists)

	ui.ConfigureTheme(cfg.UI.Accent)
	display = ui.NewDisplayContext()
	return nil
}

// getConfig returns the loaded config, or the defaults before loading.
func getConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// getDisplay returns the stdout display context.
func getDisplay() *ui.DisplayContext {
	if display == nil {
		return ui.PlainDisplayContext()
	}
	return display
}

// flagOr returns the flag's value when it was set on the command line and
// fallback (usually the config value) otherwise.
func flagOr(fs *pflag.FlagSet, name, fallback string) string {
	if f := fs.Lookup(name); f != nil && f.Changed {
		return f.Value.String()
	}
	return fallback
}

// intFlagOr is flagOr for integer flags.
func intFlagOr(fs *pflag.FlagSet, name string, fallback int) int {
	if f := fs.Lookup(name); f != nil && f.Changed {
		if n, err := fs.GetInt(name); err == nil {
			return n
		}
	}
	return fallback
}
