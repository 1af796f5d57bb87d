package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Root returns the top-level directory of the Git repository containing dir.
func Root(dir string) (string, error) {
	out, err := output(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("locating project root: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// IsInstalled returns true if git is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// output executes a git command and returns its stdout.
// Stderr is captured and included in the error message on failure.
func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String(), nil
}
