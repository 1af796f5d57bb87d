package conda

import (
	"fmt"
	"strings"
)

// NotFoundError reports that no conda-compatible binary could be located.
type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "no conda-compatible binary found (tried $MAMBA_EXE, micromamba, mamba, $CONDA_EXE, conda)"
}

// ExecError wraps a failed backend create or update invocation. The
// backend's own diagnostics are preserved verbatim: package-manager error
// messages are the primary debugging signal for environment problems.
type ExecError struct {
	Cmd    string
	Stderr string
	Err    error
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Cmd, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *ExecError) Unwrap() error { return e.Err }
