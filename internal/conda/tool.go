package conda

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Tool is one package-manager binary adapted to a common surface. All
// operations block until the child process exits; none of them cache state.
type Tool interface {
	// Name identifies the binary, e.g. "micromamba".
	Name() string
	// Exists reports whether an environment is installed at the prefix.
	Exists(prefix string) bool
	// Create builds a new environment at prefix from a spec file. The
	// caller guarantees the environment does not already exist.
	Create(prefix, specFile string) error
	// Update brings an existing environment at prefix in line with a spec
	// file. Safe to repeat: applying the same spec twice is a no-op for
	// the backend.
	Update(prefix, specFile string) error
	// RunIn executes argv inside the environment at prefix with stdio
	// inherited. dir sets the working directory; empty means the caller's.
	// The child's exit status is returned untranslated.
	RunIn(prefix string, argv []string, dir string) error
}

// Detect probes for a conda-compatible binary and returns the first hit, in
// order of preference: $MAMBA_EXE, micromamba, mamba, $CONDA_EXE, conda.
// Faster implementations are preferred; the reference implementation is the
// fallback.
func Detect() (Tool, error) {
	if exe := os.Getenv("MAMBA_EXE"); exe != "" {
		return toolFor(exe), nil
	}
	for _, name := range []string{"micromamba", "mamba"} {
		if exe, err := exec.LookPath(name); err == nil {
			return toolFor(exe), nil
		}
	}
	if exe := os.Getenv("CONDA_EXE"); exe != "" {
		return toolFor(exe), nil
	}
	if exe, err := exec.LookPath("conda"); err == nil {
		return toolFor(exe), nil
	}
	return nil, &NotFoundError{}
}

// toolFor picks the adapter matching the binary's command surface.
// micromamba is a standalone executable with top-level create/update;
// mamba mirrors conda's `env` sub-command surface exactly.
func toolFor(exe string) Tool {
	base := strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
	if base == "micromamba" {
		return &micromamba{exe: exe}
	}
	return &classic{name: base, exe: exe}
}

// envExists reports whether a prefix directory holds an installed
// environment. conda-meta is written by every backend on create.
func envExists(prefix string) bool {
	info, err := os.Stat(filepath.Join(prefix, "conda-meta"))
	return err == nil && info.IsDir()
}

// micromamba adapts the standalone micromamba binary.
type micromamba struct {
	exe string
}

func (t *micromamba) Name() string              { return "micromamba" }
func (t *micromamba) Exists(prefix string) bool { return envExists(prefix) }

func (t *micromamba) createArgs(prefix, specFile string) []string {
	return []string{"create", "--yes", "--prefix", prefix, "--file", specFile}
}

func (t *micromamba) updateArgs(prefix, specFile string) []string {
	return []string{"update", "--yes", "--prefix", prefix, "--file", specFile, "--prune"}
}

func (t *micromamba) runArgs(prefix string, argv []string) []string {
	return append([]string{"run", "--prefix", prefix}, argv...)
}

func (t *micromamba) Create(prefix, specFile string) error {
	return stream(t.exe, t.createArgs(prefix, specFile))
}

func (t *micromamba) Update(prefix, specFile string) error {
	return stream(t.exe, t.updateArgs(prefix, specFile))
}

func (t *micromamba) RunIn(prefix string, argv []string, dir string) error {
	return interactive(t.exe, t.runArgs(prefix, argv), dir)
}

// classic adapts conda and mamba, which share the `env` sub-command surface.
type classic struct {
	name string
	exe  string
}

func (t *classic) Name() string              { return t.name }
func (t *classic) Exists(prefix string) bool { return envExists(prefix) }

func (t *classic) createArgs(prefix, specFile string) []string {
	return []string{"env", "create", "--yes", "--file", specFile, "--prefix", prefix}
}

func (t *classic) updateArgs(prefix, specFile string) []string {
	return []string{"env", "update", "--file", specFile, "--prefix", prefix, "--prune"}
}

func (t *classic) runArgs(prefix string, argv []string) []string {
	// --no-capture-output keeps the child attached to the terminal rather
	// than buffered through conda.
	return append([]string{"run", "--prefix", prefix, "--no-capture-output"}, argv...)
}

func (t *classic) Create(prefix, specFile string) error {
	return stream(t.exe, t.createArgs(prefix, specFile))
}

func (t *classic) Update(prefix, specFile string) error {
	return stream(t.exe, t.updateArgs(prefix, specFile))
}

func (t *classic) RunIn(prefix string, argv []string, dir string) error {
	return interactive(t.exe, t.runArgs(prefix, argv), dir)
}

// stream executes a mutating backend command, showing its output live while
// keeping a copy of stderr for the error report.
func stream(exe string, args []string) error {
	cmd := exec.Command(exe, args...)
	var stderr bytes.Buffer
	cmd.Stdout = os.Stdout
	cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)
	if err := cmd.Run(); err != nil {
		return &ExecError{
			Cmd:    exe + " " + strings.Join(args, " "),
			Stderr: stderr.String(),
			Err:    err,
		}
	}
	return nil
}

// interactive executes a command with stdio fully inherited. Errors are
// returned untouched so a child's exit code survives to the caller.
func interactive(exe string, args []string, dir string) error {
	cmd := exec.Command(exe, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
