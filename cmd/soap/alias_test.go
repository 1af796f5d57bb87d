package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/testutil"
)

const aliasProject = `
[envs.docs-env]
yml_path = "docs.yml"
install_current = false

[envs.user]
yml_path = "user.yml"
install_current = false

[aliases.docs]
cmd = "true"
env = "docs-env"
`

var aliasFiles = map[string]string{
	"docs.yml": "name: docs\ndependencies: [sphinx]\n",
	"user.yml": "name: user\ndependencies: [python]\n",
}

func lastRunLine(t *testing.T, calls string) string {
	t.Helper()
	lines := testutil.StubCalls(t, calls)
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], "run ") {
			return lines[i]
		}
	}
	t.Fatalf("no run call logged; calls = %v", lines)
	return ""
}

func TestAlias_usesDeclaredEnv(t *testing.T) {
	calls := testutil.StubBackend(t)
	ctx := loadProject(t, aliasProject, aliasFiles)

	root, err := newRootCmd(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	root.SetArgs([]string{"docs"})
	if err := root.Execute(); err != nil {
		t.Fatalf("docs alias failed: %v", err)
	}

	run := lastRunLine(t, calls)
	if !strings.Contains(run, ctx.Config.Envs["docs-env"].EnvPath) {
		t.Errorf("run = %q, want docs-env prefix", run)
	}
}

func TestAlias_envFlagOverridesDeclared(t *testing.T) {
	calls := testutil.StubBackend(t)
	ctx := loadProject(t, aliasProject, aliasFiles)

	root, err := newRootCmd(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	root.SetArgs([]string{"docs", "--env", "user"})
	if err := root.Execute(); err != nil {
		t.Fatalf("docs --env user failed: %v", err)
	}

	run := lastRunLine(t, calls)
	if !strings.Contains(run, ctx.Config.Envs["user"].EnvPath) {
		t.Errorf("run = %q, want user prefix", run)
	}
	if strings.Contains(run, ctx.Config.Envs["docs-env"].EnvPath) {
		t.Errorf("run = %q, declared env should have been overridden", run)
	}
}

func TestAlias_withoutEnvRunsBare(t *testing.T) {
	calls := testutil.StubBackend(t)
	marker := filepath.Join(t.TempDir(), "bare.txt")
	ctx := loadProject(t, `
[aliases.mark]
cmd = "touch `+marker+`"
`, nil)

	root, err := newRootCmd(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	root.SetArgs([]string{"mark"})
	if err := root.Execute(); err != nil {
		t.Fatalf("mark alias failed: %v", err)
	}

	if _, err := os.Stat(marker); err != nil {
		t.Error("aliased command did not run")
	}
	if got := testutil.StubCalls(t, calls); len(got) != 0 {
		t.Errorf("backend touched for an environment-less alias: %v", got)
	}
}

func TestAlias_chdirRunsFromProjectRoot(t *testing.T) {
	testutil.StubBackend(t)
	ctx := loadProject(t, `
[aliases.where]
cmd = "pwd > from-root.txt"
chdir = true
`, nil)

	// Invoke from a subdirectory of the project.
	sub := filepath.Join(ctx.Root, "src")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(sub)

	root, err := newRootCmd(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	root.SetArgs([]string{"where"})
	if err := root.Execute(); err != nil {
		t.Fatalf("where alias failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(ctx.Root, "from-root.txt"))
	if err != nil {
		t.Fatal("output file not written to the project root")
	}
	got, _ := filepath.EvalSymlinks(strings.TrimSpace(string(data)))
	want, _ := filepath.EvalSymlinks(ctx.Root)
	if got != want {
		t.Errorf("command ran in %q, want project root %q", got, want)
	}
}

func TestAlias_passthroughArgs(t *testing.T) {
	testutil.StubBackend(t)
	marker := filepath.Join(t.TempDir(), "arg.txt")
	ctx := loadProject(t, `
[aliases.mk]
cmd = "touch"
passthrough_args = true
`, nil)

	root, err := newRootCmd(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	root.SetArgs([]string{"mk", marker})
	if err := root.Execute(); err != nil {
		t.Fatalf("mk alias failed: %v", err)
	}

	if _, err := os.Stat(marker); err != nil {
		t.Error("passthrough argument was not appended to the command")
	}
}
