package main

import (
	"os"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/project"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/ui"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	// Configuration is loaded up front because the command surface itself
	// depends on it: each alias becomes a sub-command. A load failure is
	// not yet fatal — init and doctor must work in unconfigured projects.
	ctx, loadErr := project.Load(".")

	rootCmd, err := newRootCmd(ctx, loadErr)
	if err != nil {
		ui.Errorf(os.Stderr, "%v", err)
		os.Exit(exitCode(err))
	}

	if err := rootCmd.Execute(); err != nil {
		ui.Errorf(os.Stderr, "%v", err)
		os.Exit(exitCode(err))
	}
}
