// Package testutil provides reusable fixtures for memokit command tests.
package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// Workspace is a temporary working directory holding input fixtures.
type Workspace struct {
	Path string
	t    *testing.T

	files     map[string]string
	databases map[string][]string
}

// NewWorkspace creates a new workspace builder.
// Call Build() to create the actual directory.
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()
	return &Workspace{
		t:         t,
		files:     make(map[string]string),
		databases: make(map[string][]string),
	}
}

// WithFile adds a file to the workspace.
// The path is relative to the workspace root.
func (w *Workspace) WithFile(path, content string) *Workspace {
	w.files[path] = content
	return w
}

// WithDatabase adds a SQLite database created by running stmts in order.
func (w *Workspace) WithDatabase(path string, stmts ...string) *Workspace {
	w.databases[path] = stmts
	return w
}

// Build creates the workspace directory and all configured fixtures.
// Returns the Workspace for method chaining.
func (w *Workspace) Build() *Workspace {
	w.t.Helper()

	w.Path = w.t.TempDir()

	for path, content := range w.files {
		w.writeFile(path, content)
	}
	for path, stmts := range w.databases {
		CreateDatabase(w.t, w.Abs(path), stmts...)
	}

	return w
}

func (w *Workspace) writeFile(relPath, content string) {
	w.t.Helper()
	fullPath := w.Abs(relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		w.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		w.t.Fatalf("failed to write %s: %v", relPath, err)
	}
}

// Abs returns the absolute path of relPath inside the workspace.
func (w *Workspace) Abs(relPath string) string {
	return filepath.Join(w.Path, relPath)
}

// ReadFile reads a file from the workspace.
func (w *Workspace) ReadFile(relPath string) string {
	w.t.Helper()
	content, err := os.ReadFile(w.Abs(relPath))
	if err != nil {
		w.t.Fatalf("failed to read %s: %v", relPath, err)
	}
	return string(content)
}

// FileExists checks if a file exists in the workspace.
func (w *Workspace) FileExists(relPath string) bool {
	_, err := os.Stat(w.Abs(relPath))
	return err == nil
}

// Glob returns workspace-relative paths matching pattern.
func (w *Workspace) Glob(pattern string) []string {
	w.t.Helper()
	matches, err := filepath.Glob(w.Abs(pattern))
	if err != nil {
		w.t.Fatalf("bad glob %q: %v", pattern, err)
	}
	rel := make([]string, 0, len(matches))
	for _, m := range matches {
		r, err := filepath.Rel(w.Path, m)
		if err != nil {
			w.t.Fatalf("failed to relativize %s: %v", m, err)
		}
		rel = append(rel, r)
	}
	return rel
}

// CreateDatabase creates a SQLite file at path and runs stmts against it.
func CreateDatabase(t *testing.T, path string, stmts ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create database %s: %v", path, err)
	}
	defer db.Close()

	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("fixture statement %q failed: %v", s, err)
		}
	}
}
