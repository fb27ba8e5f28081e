package cli

import (
	"os"
	"testing"

	"github.com/aidanlsb/memokit/internal/testutil"
	"github.com/aidanlsb/memokit/internal/ui"
)

func TestLoadSettingsAppliesAccent(t *testing.T) {
	origAccent, origAccentBold := ui.Accent, ui.AccentBold
	t.Cleanup(func() {
		ui.Accent, ui.AccentBold = origAccent, origAccentBold
		ui.ConfigureTheme("")
	})

	tests := []struct {
		name   string
		config string
		want   string
		ok     bool
	}{
		{"hex", "[ui]\naccent = \"#7AA2F7\"\n", "#7aa2f7", true},
		{"ansi", "[ui]\naccent = \"39\"\n", "39", true},
		{"disabled", "[ui]\naccent = \"none\"\n", "", false},
		{"unset", "[memo]\ninput = \"note.json\"\n", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := testutil.NewWorkspace(t).WithFile("config.toml", tt.config).Build()

			runMemo(t, ws, "config", "path", "--config", ws.Abs("config.toml"))

			got, ok := ui.AccentColor()
			if ok != tt.ok || got != tt.want {
				t.Errorf("AccentColor() = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLoadSettingsMissingConfigUsesDefaults(t *testing.T) {
	ws := testutil.NewWorkspace(t).Build()

	runSQLite(t, ws, "config", "path")

	if _, err := os.Stat(ws.Abs("no-config.toml")); !os.IsNotExist(err) {
		t.Errorf("loading settings must not create the config file, stat err = %v", err)
	}
	if got := getConfig().SQLite.ExportDir; got != "csv_exports" {
		t.Errorf("expected default export dir, got %q", got)
	}
}
