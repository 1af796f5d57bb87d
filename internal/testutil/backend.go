package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubScript emulates micromamba closely enough for dispatch tests: it logs
// every invocation, marks prefixes as installed on create/update, and execs
// the target command on run so stdio and exit codes behave like the real
// thing.
const stubScript = `#!/bin/sh
printf '%s\n' "$*" >> "$SOAP_STUB_CALLS"
if [ -n "$SOAP_STUB_FAIL" ] && [ -e "$SOAP_STUB_FAIL" ]; then
	echo "stub backend: forced failure" >&2
	exit 1
fi
cmd="$1"
shift
case "$cmd" in
create|update)
	prefix=""
	while [ $# -gt 0 ]; do
		case "$1" in
			--prefix) prefix="$2"; shift 2 ;;
			*) shift ;;
		esac
	done
	[ -n "$prefix" ] && mkdir -p "$prefix/conda-meta"
	;;
run)
	while [ $# -gt 0 ]; do
		case "$1" in
			--prefix) shift 2 ;;
			--*) shift ;;
			*) break ;;
		esac
	done
	exec "$@"
	;;
esac
exit 0
`

// StubBackend installs a fake micromamba binary at the front of PATH and
// returns the log file its invocations are appended to. Backend environment
// variables are cleared so detection always lands on the stub.
func StubBackend(t *testing.T) (callsFile string) {
	t.Helper()
	dir := t.TempDir()

	callsFile = filepath.Join(dir, "calls.log")
	if err := os.WriteFile(filepath.Join(dir, "micromamba"), []byte(stubScript), 0755); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MAMBA_EXE", "")
	t.Setenv("CONDA_EXE", "")
	t.Setenv("SOAP_STUB_CALLS", callsFile)
	t.Setenv("SOAP_STUB_FAIL", filepath.Join(dir, "fail"))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return callsFile
}

// FailBackend makes every subsequent stub invocation exit non-zero.
func FailBackend(t *testing.T) {
	t.Helper()
	if err := os.WriteFile(os.Getenv("SOAP_STUB_FAIL"), nil, 0644); err != nil {
		t.Fatal(err)
	}
}

// StubCalls returns the logged stub invocations, one per line.
func StubCalls(t *testing.T, callsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(callsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}
