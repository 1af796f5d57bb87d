package main

import (
	"github.com/spf13/cobra"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/config"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/project"
)

// reservedNames are command names aliases may not shadow: the built-ins
// plus the commands cobra registers itself.
var reservedNames = map[string]bool{
	"run":        true,
	"update":     true,
	"status":     true,
	"doctor":     true,
	"init":       true,
	"help":       true,
	"completion": true,
}

// newRootCmd builds the command tree. ctx may be nil when the project
// configuration could not be loaded; loadErr then carries the reason and is
// surfaced by any command that needs configuration. An alias shadowing a
// built-in is an error: no commands are registered and startup fails.
func newRootCmd(ctx *project.Context, loadErr error) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "soap",
		Short: "Snakes on a Plane: Cargo for Conda",
		Long: `Snakes on a Plane manages conda environments and command aliases declared
in soap.toml or in the [tool.soap] table of pyproject.toml. Environments are
kept in sync with their spec files before every command runs in them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newRunCmd(ctx, loadErr),
		newUpdateCmd(ctx, loadErr),
		newStatusCmd(ctx, loadErr),
		newDoctorCmd(ctx),
		newInitCmd(),
	)

	if ctx != nil {
		for _, alias := range ctx.Config.Aliases {
			if reservedNames[alias.Name] {
				return nil, &config.NameCollisionError{Alias: alias.Name}
			}
		}
		for _, alias := range ctx.Config.Aliases {
			cmd.AddCommand(newAliasCmd(ctx, alias))
		}
	}

	return cmd, nil
}
