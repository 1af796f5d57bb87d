// Package testutil provides fixtures for soap tests: scratch projects with
// configuration checked in, and a stub conda-compatible binary that records
// every call it receives.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// CreateProject creates a temp git repository containing a soap.toml and any
// extra files, and returns its path.
func CreateProject(t *testing.T, soapToml string, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	if err := exec.Command("git", "init", "-q", dir).Run(); err != nil {
		t.Fatalf("git init: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "soap.toml"), []byte(soapToml), 0644); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Resolve symlinks so paths compare cleanly with git rev-parse output.
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	return resolved
}
