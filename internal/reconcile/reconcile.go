// Package reconcile keeps live conda environments in agreement with their
// declared specs. Every decision starts from freshly read state: the
// environment can be mutated out-of-band between invocations, so nothing is
// cached across calls.
package reconcile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/conda"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/config"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/drift"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/envspec"
)

// workingName is the composed spec file handed to the backend. It is removed
// after the apply; only a successful apply leaves a snapshot behind.
const workingName = ".soap-env-working.yml"

// Reconciler applies the minimal corrective action to bring an environment
// in line with its spec: create when absent, update when drifted, nothing
// when synced. At most one backend mutation happens per call.
type Reconciler struct {
	Tool conda.Tool
	// Out receives progress messages. Defaults to os.Stderr so dispatched
	// command output stays clean on stdout.
	Out io.Writer
}

// Ensure synchronizes one environment and reports the drift status it found.
// Backend failures are fatal: the error carries the backend's diagnostics and
// the caller must not run anything in the environment.
func (r *Reconciler) Ensure(env config.Env) (drift.Status, error) {
	data, declared, err := r.compose(env)
	if err != nil {
		return 0, err
	}

	status := r.classify(env, declared)
	switch status {
	case drift.Synced:
		return status, nil
	case drift.Absent:
		r.infof("Creating environment %q from %s", env.Name, env.YmlPath)
	case drift.Drifted:
		r.infof("Updating environment %q from %s", env.Name, env.YmlPath)
	}

	return status, r.apply(env, data, status == drift.Absent)
}

// Recreate deletes any existing environment at the prefix and builds it from
// scratch. Used when an in-place update is not trusted to converge.
func (r *Reconciler) Recreate(env config.Env) error {
	data, _, err := r.compose(env)
	if err != nil {
		return err
	}

	if r.Tool.Exists(env.EnvPath) {
		r.infof("Removing environment %q at %s", env.Name, env.EnvPath)
		if err := os.RemoveAll(env.EnvPath); err != nil {
			return fmt.Errorf("removing environment %q: %w", env.Name, err)
		}
	}

	r.infof("Creating environment %q from %s", env.Name, env.YmlPath)
	return r.apply(env, data, true)
}

// Status classifies an environment without mutating anything.
func (r *Reconciler) Status(env config.Env) (drift.Status, error) {
	_, declared, err := r.compose(env)
	if err != nil {
		return 0, err
	}
	return r.classify(env, declared), nil
}

// compose loads the declared spec, folds in the per-env extras, and returns
// the serialized composed document along with its content hash.
func (r *Reconciler) compose(env config.Env) ([]byte, string, error) {
	doc, err := envspec.Load(env.YmlPath)
	if err != nil {
		return nil, "", err
	}
	doc = envspec.Compose(doc, env.AdditionalChannels, env.AdditionalDependencies)
	data, err := envspec.Marshal(doc)
	if err != nil {
		return nil, "", err
	}
	return data, envspec.Hash(doc), nil
}

func (r *Reconciler) classify(env config.Env, declared string) drift.Status {
	exists := r.Tool.Exists(env.EnvPath)
	recorded, hasRecorded := conda.RecordedHash(env.EnvPath)
	return drift.Classify(declared, exists, recorded, hasRecorded)
}

// apply performs the single backend mutation for this invocation and records
// the applied spec on success.
func (r *Reconciler) apply(env config.Env, data []byte, create bool) error {
	if err := os.MkdirAll(env.EnvPath, 0755); err != nil {
		return fmt.Errorf("creating environment directory: %w", err)
	}
	working := filepath.Join(env.EnvPath, workingName)
	if err := os.WriteFile(working, data, 0644); err != nil {
		return fmt.Errorf("writing working spec: %w", err)
	}

	var err error
	if create {
		err = r.Tool.Create(env.EnvPath, working)
	} else {
		err = r.Tool.Update(env.EnvPath, working)
	}
	if err != nil {
		_ = os.Remove(working)
		return err
	}

	// Record only after the backend succeeds; an interrupted apply leaves no
	// snapshot and classifies Drifted on the next run.
	if err := conda.WriteSnapshot(env.EnvPath, data); err != nil {
		return err
	}
	_ = os.Remove(working)

	if env.InstallCurrent {
		r.infof("Installing current project into %q", env.Name)
		argv := []string{"python", "-m", "pip", "install", "--no-deps", "-e", env.Root}
		if err := r.Tool.RunIn(env.EnvPath, argv, env.Root); err != nil {
			return fmt.Errorf("installing current project into %q: %w", env.Name, err)
		}
	}
	return nil
}

func (r *Reconciler) infof(format string, args ...any) {
	out := r.Out
	if out == nil {
		out = os.Stderr
	}
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}
