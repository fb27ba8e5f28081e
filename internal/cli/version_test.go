package cli

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/aidanlsb/memokit/internal/testutil"
)

func releaseBuild() *debug.BuildInfo {
	return &debug.BuildInfo{
		GoVersion: "go1.23.4",
		Main: debug.Module{
			Path:    "github.com/aidanlsb/memokit",
			Version: "v0.4.0",
		},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-02-14T17:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "GOOS", Value: "windows"},
			{Key: "GOARCH", Value: "amd64"},
		},
	}
}

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	prev := readBuildInfo
	t.Cleanup(func() { readBuildInfo = prev })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		name   string
		binary string
		bi     *debug.BuildInfo
		want   versionInfo
	}{
		{
			name:   "release build",
			binary: "sqlite2csv",
			bi:     releaseBuild(),
			want: versionInfo{
				Binary:     "sqlite2csv",
				Suite:      "memokit",
				Version:    "v0.4.0",
				ModulePath: "github.com/aidanlsb/memokit",
				Commit:     "0123456789abcdef0123",
				CommitTime: "2026-02-14T17:00:00Z",
				Modified:   true,
				GoVersion:  "go1.23.4",
				GOOS:       "windows",
				GOARCH:     "amd64",
			},
		},
		{
			name:   "local build",
			binary: "memo",
			bi:     &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: versionInfo{
				Binary:     "memo",
				Suite:      "memokit",
				Version:    "devel",
				ModulePath: defaultModulePath,
				GoVersion:  runtime.Version(),
				GOOS:       runtime.GOOS,
				GOARCH:     runtime.GOARCH,
			},
		},
		{
			name:   "no build info",
			binary: "memo",
			want: versionInfo{
				Binary:     "memo",
				Suite:      "memokit",
				Version:    "devel",
				ModulePath: defaultModulePath,
				GoVersion:  runtime.Version(),
				GOOS:       runtime.GOOS,
				GOARCH:     runtime.GOARCH,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveVersion(tt.binary, tt.bi, tt.bi != nil)
			if got != tt.want {
				t.Errorf("resolveVersion() =\n %+v\nwant\n %+v", got, tt.want)
			}
		})
	}
}

func TestVersionBanner(t *testing.T) {
	stubBuildInfo(t, releaseBuild())
	ws := testutil.NewWorkspace(t).Build()

	tests := []struct {
		binary string
		run    func(t *testing.T, ws *testutil.Workspace, args ...string) string
	}{
		{"memo", runMemo},
		{"sqlite2csv", runSQLite},
	}
	for _, tt := range tests {
		t.Run(tt.binary, func(t *testing.T) {
			out := tt.run(t, ws, "version")

			lines := strings.Split(strings.TrimSpace(out), "\n")
			if want := tt.binary + " v0.4.0 (memokit)"; lines[0] != want {
				t.Errorf("banner = %q, want %q", lines[0], want)
			}
			if !strings.Contains(out, "0123456789ab 2026-02-14T17:00:00Z (modified)") {
				t.Errorf("expected short commit line, got:\n%s", out)
			}
			if !strings.Contains(out, "go1.23.4 windows/amd64") {
				t.Errorf("expected platform line, got:\n%s", out)
			}

			if out := tt.run(t, ws, "version", "--short"); strings.TrimSpace(out) != "v0.4.0" {
				t.Errorf("--short = %q, want v0.4.0", out)
			}
		})
	}
}

func TestVersionJSON(t *testing.T) {
	stubBuildInfo(t, nil)
	ws := testutil.NewWorkspace(t).Build()

	out := runSQLite(t, ws, "version", "--json")

	result := testutil.ParseResult(t, out).MustSucceed(t)
	if result.DataString("binary") != "sqlite2csv" || result.DataString("suite") != "memokit" {
		t.Errorf("unexpected identity: %s", result.RawJSON)
	}
	if result.DataString("version") != "devel" {
		t.Errorf("expected devel version, got %s", result.RawJSON)
	}
}
