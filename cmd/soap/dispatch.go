package main

import (
	"os"
	"os/exec"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/conda"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/config"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/project"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/reconcile"
)

// invocation is one resolved command execution: the shell command to run,
// the environment it runs in (empty for none), and the working-directory
// policy. Resolution happens in the sub-commands; no global state is
// consulted here.
type invocation struct {
	command string
	envName string
	chdir   bool
}

// dispatch executes one invocation: reconcile the target environment if
// there is one, then run the command inside it. Exactly one reconciliation
// and one execution happen per call. Name resolution failures surface
// before any backend call.
func dispatch(ctx *project.Context, inv invocation) error {
	dir := ""
	if inv.chdir {
		dir = ctx.Root
	}
	// Commands are shell command lines, the same form they take in the
	// configuration file; the shell handles quoting and expansion.
	argv := []string{"sh", "-c", inv.command}

	if inv.envName == "" {
		// No environment: nothing to reconcile, run the command bare.
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Dir = dir
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}

	env, ok := ctx.Config.Envs[inv.envName]
	if !ok {
		return &config.UnknownEnvError{Name: inv.envName}
	}

	tool, err := conda.Detect()
	if err != nil {
		return err
	}

	rec := &reconcile.Reconciler{Tool: tool, Out: os.Stderr}
	if _, err := rec.Ensure(env); err != nil {
		return err
	}

	return tool.RunIn(env.EnvPath, argv, dir)
}
