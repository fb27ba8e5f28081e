package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/memokit/internal/config"
	"github.com/aidanlsb/memokit/internal/ui"
)

// newConfigCmd builds the config command group shared by both binaries.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the memokit config file",
		Args:  cobra.NoArgs,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isJSONOutput() {
				outputSuccess(map[string]string{"config_path": resolvedConfigPath}, nil)
				return nil
			}
			fmt.Println(resolvedConfigPath)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := getConfig()
			if isJSONOutput() {
				outputSuccess(map[string]interface{}{
					"config_path": resolvedConfigPath,
					"config":      c,
				}, nil)
				return nil
			}
			fmt.Println(ui.Hint("# " + resolvedConfigPath))
			if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(c); err != nil {
				return handleError(ErrConfigInvalid, err, "")
			}
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(resolvedConfigPath)
			if err != nil {
				if errors.Is(err, config.ErrConfigExists) {
					return reportError(ErrConfigExists, fmt.Sprintf("config already exists: %s", path), "Edit the file or pass --config to write elsewhere")
				}
				return reportError(ErrFileWriteError, err.Error(), "")
			}
			if isJSONOutput() {
				outputSuccess(map[string]string{"config_path": path}, nil)
				return nil
			}
			fmt.Println(ui.Successf("Created %s", ui.FilePath(path)))
			return nil
		},
	})

	return configCmd
}
