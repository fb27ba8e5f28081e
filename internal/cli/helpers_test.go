package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aidanlsb/memokit/internal/testutil"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

// resetCommandFlags restores every flag in the tree to its default so
// commands can be executed repeatedly within one test binary.
func resetCommandFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCommandFlags(sub)
	}
}

// isolate points the config at a file that does not exist and fixes the clock.
// The returned flags go first, so a --config given by the test still wins.
func isolate(t *testing.T, dir string) []string {
	t.Helper()
	prevNow := now
	t.Cleanup(func() { now = prevNow })
	now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local) }
	return []string{"--config", filepath.Join(dir, "no-config.toml")}
}

func runMemo(t *testing.T, ws *testutil.Workspace, args ...string) string {
	t.Helper()
	resetCommandFlags(memoRootCmd)
	memoRootCmd.SetArgs(append(isolate(t, ws.Path), args...))
	return captureStdout(t, func() {
		if err := memoRootCmd.Execute(); err != nil {
			t.Fatalf("memo %v: %v", args, err)
		}
	})
}

func runSQLite(t *testing.T, ws *testutil.Workspace, args ...string) string {
	t.Helper()
	resetCommandFlags(sqliteRootCmd)
	sqliteRootCmd.SetArgs(databaseFirstArgs(sqliteRootCmd, append(isolate(t, ws.Path), args...)))
	return captureStdout(t, func() {
		if err := sqliteRootCmd.Execute(); err != nil {
			t.Fatalf("sqlite2csv %v: %v", args, err)
		}
	})
}
