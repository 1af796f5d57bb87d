package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const maximalist = `
[envs]
test = "devtools/conda-envs/test_env.yml"

[envs.docs]
yml_path = "devtools/conda-envs/docs_env.yml"
install_current = false

[envs.user]
yml_path = "devtools/conda-envs/user_env.yml"
env_path = "/opt/conda/envs/soap-env"
additional_channels = ["conda-forge"]
additional_dependencies = ["pytest"]

[aliases]
greet = "echo hello world"

[aliases.docs]
cmd = "sphinx-build -j auto docs docs/_build/html"
chdir = true
env = "docs"
description = "Build the docs with Sphinx"
passthrough_args = true
`

func TestParse_maximalist(t *testing.T) {
	root := "/home/someone/project"
	cfg, err := Parse([]byte(maximalist), root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Envs) != 3 {
		t.Fatalf("envs count = %d, want 3", len(cfg.Envs))
	}

	test := cfg.Envs["test"]
	if test.YmlPath != filepath.Join(root, "devtools/conda-envs/test_env.yml") {
		t.Errorf("test yml_path = %q", test.YmlPath)
	}
	if test.EnvPath != filepath.Join(root, ".soap", "test") {
		t.Errorf("test env_path = %q, want default prefix", test.EnvPath)
	}
	if !test.InstallCurrent {
		t.Error("install_current should default to true")
	}

	docs := cfg.Envs["docs"]
	if docs.InstallCurrent {
		t.Error("docs install_current should be false")
	}

	user := cfg.Envs["user"]
	if user.EnvPath != "/opt/conda/envs/soap-env" {
		t.Errorf("user env_path = %q, want absolute path kept", user.EnvPath)
	}
	if len(user.AdditionalChannels) != 1 || user.AdditionalChannels[0] != "conda-forge" {
		t.Errorf("user additional_channels = %v", user.AdditionalChannels)
	}
	if len(user.AdditionalDependencies) != 1 || user.AdditionalDependencies[0] != "pytest" {
		t.Errorf("user additional_dependencies = %v", user.AdditionalDependencies)
	}

	if len(cfg.Aliases) != 2 {
		t.Fatalf("aliases count = %d, want 2", len(cfg.Aliases))
	}
	// Aliases are sorted by name: docs, greet.
	docsAlias := cfg.Aliases[0]
	if docsAlias.Name != "docs" || !docsAlias.Chdir || docsAlias.Env != "docs" || !docsAlias.PassthroughArgs {
		t.Errorf("docs alias = %+v", docsAlias)
	}
	if docsAlias.Description != "Build the docs with Sphinx" {
		t.Errorf("docs description = %q", docsAlias.Description)
	}

	greet := cfg.Aliases[1]
	if greet.Cmd != "echo hello world" || greet.Chdir || greet.Env != "" {
		t.Errorf("greet alias = %+v", greet)
	}
	if greet.Description != "Alias for `echo hello world`" {
		t.Errorf("greet description = %q", greet.Description)
	}
}

func TestParse_aliasUnknownEnv(t *testing.T) {
	data := []byte(`
[aliases.docs]
cmd = "make html"
env = "docs"
`)
	_, err := Parse(data, "/p")
	var uerr *UnknownEnvError
	if !errors.As(err, &uerr) {
		t.Fatalf("err = %v, want UnknownEnvError", err)
	}
	if uerr.Name != "docs" {
		t.Errorf("unknown env name = %q", uerr.Name)
	}
}

func TestParse_envMissingYmlPath(t *testing.T) {
	data := []byte(`
[envs.broken]
install_current = false
`)
	if _, err := Parse(data, "/p"); err == nil {
		t.Error("expected error for env without yml_path")
	}
}

func TestParse_aliasMissingCmd(t *testing.T) {
	data := []byte(`
[aliases.broken]
chdir = true
`)
	if _, err := Parse(data, "/p"); err == nil {
		t.Error("expected error for alias without cmd")
	}
}

func TestLoad_soapTomlWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "soap.toml", `envs = { a = "a.yml" }`)
	writeFile(t, root, "pyproject.toml", `
[tool.soap.envs]
b = "b.yml"
`)

	cfg, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cfg.Envs["a"]; !ok {
		t.Error("soap.toml should take precedence over pyproject.toml")
	}
	if cfg.Path != filepath.Join(root, "soap.toml") {
		t.Errorf("cfg.Path = %q", cfg.Path)
	}
}

func TestLoad_pyproject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pyproject.toml", `
[tool.poetry]
name = "something-else"

[tool.soap.envs]
dev = "env.yml"

[tool.soap.aliases]
lint = "ruff check ."
`)

	cfg, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cfg.Envs["dev"]; !ok {
		t.Error("dev env missing from pyproject config")
	}
	if len(cfg.Aliases) != 1 || cfg.Aliases[0].Cmd != "ruff check ." {
		t.Errorf("aliases = %+v", cfg.Aliases)
	}
}

func TestLoad_pyprojectWithoutSoapTable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pyproject.toml", `
[tool.poetry]
name = "something-else"
`)
	_, err := Load(root)
	var merr *MissingFileError
	if !errors.As(err, &merr) {
		t.Errorf("err = %v, want MissingFileError", err)
	}
}

func TestLoad_missing(t *testing.T) {
	_, err := Load(t.TempDir())
	var merr *MissingFileError
	if !errors.As(err, &merr) {
		t.Errorf("err = %v, want MissingFileError", err)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
