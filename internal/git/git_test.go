package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := exec.Command("git", "init", "-q", dir).Run(); err != nil {
		t.Fatalf("git init: %v", err)
	}
	return dir
}

func TestRoot_fromSubdirectory(t *testing.T) {
	repo := initRepo(t)
	sub := filepath.Join(repo, "a", "b")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	root, err := Root(sub)
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	// Temp dirs may be reached through symlinks; compare resolved paths.
	wantRoot, _ := filepath.EvalSymlinks(repo)
	gotRoot, _ := filepath.EvalSymlinks(root)
	if gotRoot != wantRoot {
		t.Errorf("Root = %q, want %q", gotRoot, wantRoot)
	}
}

func TestRoot_outsideRepo(t *testing.T) {
	dir := t.TempDir()
	if _, err := Root(dir); err == nil {
		t.Error("expected error outside a git repository")
	}
}
