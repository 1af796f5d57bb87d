package main

import (
	"errors"
	"os/exec"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/conda"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/config"
)

// soap's own failures exit with sysexits-style codes, keeping them apart
// from the codes a dispatched command is likely to use. A dispatched
// command's exit code always passes through verbatim.
const (
	exitCodeUsage       = 64 // unknown environment or bad invocation
	exitCodeUnavailable = 69 // no conda-compatible binary found
	exitCodeBackend     = 70 // backend create/update failed
	exitCodeConfig      = 78 // missing or invalid configuration
)

func exitCode(err error) int {
	var (
		unknownEnv *config.UnknownEnvError
		collision  *config.NameCollisionError
		missing    *config.MissingFileError
		notFound   *conda.NotFoundError
		backend    *conda.ExecError
		child      *exec.ExitError
	)
	switch {
	case errors.As(err, &unknownEnv):
		return exitCodeUsage
	case errors.As(err, &notFound):
		return exitCodeUnavailable
	// Backend apply failures wrap the child's ExitError, so this check
	// must come before the pass-through one.
	case errors.As(err, &backend):
		return exitCodeBackend
	case errors.As(err, &collision), errors.As(err, &missing):
		return exitCodeConfig
	case errors.As(err, &child):
		return child.ExitCode()
	}
	return 1
}
