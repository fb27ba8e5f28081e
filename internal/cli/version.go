package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/memokit/internal/buildinfo"
	"github.com/aidanlsb/memokit/internal/config"
	"github.com/aidanlsb/memokit/internal/ui"
)

const defaultModulePath = "github.com/aidanlsb/memokit"

// versionInfo describes one memokit binary and the build it came from.
type versionInfo struct {
	Binary     string `json:"binary"`
	Suite      string `json:"suite"`
	Version    string `json:"version"`
	ModulePath string `json:"module_path"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	Modified   bool   `json:"modified"`
	GoVersion  string `json:"go_version"`
	GOOS       string `json:"goos"`
	GOARCH     string `json:"goarch"`
}

// Banner is the first line of the version output: "memo v1.2.3 (memokit)".
func (v versionInfo) Banner() string {
	return fmt.Sprintf("%s %s (%s)", v.Binary, v.Version, v.Suite)
}

var readBuildInfo = debug.ReadBuildInfo

var versionShort bool

// newVersionCmd builds the version command for the named binary.
func newVersionCmd(binary string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Show the %s version and build information", binary),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bi, ok := readBuildInfo()
			v := resolveVersion(binary, bi, ok)

			switch {
			case isJSONOutput():
				outputSuccess(v, nil)
			case versionShort:
				fmt.Println(v.Version)
			default:
				printVersion(v)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
	return cmd
}

func printVersion(v versionInfo) {
	fmt.Println(ui.Header(v.Banner()))

	if v.Commit != "" {
		commit := shortCommit(v.Commit)
		if v.CommitTime != "" {
			commit += " " + v.CommitTime
		}
		if v.Modified {
			commit += " (modified)"
		}
		fmt.Printf("  %s %s\n", ui.Hint("commit"), commit)
	}
	fmt.Printf("  %s %s\n", ui.Hint("module"), v.ModulePath)
	fmt.Printf("  %s %s %s/%s\n", ui.Hint("go    "), v.GoVersion, v.GOOS, v.GOARCH)
}

// resolveVersion merges the embedded build information with values injected
// through ldflags for release builds. bi may be nil when ok is false.
func resolveVersion(binary string, bi *debug.BuildInfo, ok bool) versionInfo {
	v := versionInfo{
		Binary:     binary,
		Suite:      config.AppName,
		Version:    "devel",
		ModulePath: defaultModulePath,
		GoVersion:  runtime.Version(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}

	if ok && bi != nil {
		settings := make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}

		if bi.Main.Path != "" {
			v.ModulePath = bi.Main.Path
		}
		v.Version = normalizeVersion(bi.Main.Version)
		if bi.GoVersion != "" {
			v.GoVersion = bi.GoVersion
		}
		if s := settings["GOOS"]; s != "" {
			v.GOOS = s
		}
		if s := settings["GOARCH"]; s != "" {
			v.GOARCH = s
		}
		v.Commit = settings["vcs.revision"]
		v.CommitTime = settings["vcs.time"]
		v.Modified = strings.EqualFold(settings["vcs.modified"], "true")
	}

	if v.Version == "devel" && buildinfo.Version != "" {
		v.Version = normalizeVersion(buildinfo.Version)
	}
	if v.Commit == "" {
		v.Commit = buildinfo.Commit
	}
	if v.CommitTime == "" {
		v.CommitTime = buildinfo.Date
	}
	return v
}

func normalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}

func shortCommit(commit string) string {
	if len(commit) > 12 {
		return commit[:12]
	}
	return commit
}
