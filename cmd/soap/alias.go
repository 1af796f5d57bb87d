package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/config"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/project"
)

// newAliasCmd turns one alias declaration into a sub-command. The captured
// Alias fully determines the behaviour; --env overrides the declared
// environment for a single invocation.
func newAliasCmd(ctx *project.Context, alias config.Alias) *cobra.Command {
	cmd := &cobra.Command{
		Use:   alias.Name,
		Short: alias.Description,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			envName, _ := cmd.Flags().GetString("env")
			if envName == "" {
				envName = alias.Env
			}

			command := alias.Cmd
			if alias.PassthroughArgs && len(args) > 0 {
				command += " " + strings.Join(args, " ")
			}

			return dispatch(ctx, invocation{
				command: command,
				envName: envName,
				chdir:   alias.Chdir,
			})
		},
	}
	cmd.Flags().String("env", "", "Environment in which to run the command")
	if alias.PassthroughArgs {
		// Arguments after the first positional belong to the aliased
		// command, not to soap.
		cmd.Flags().SetInterspersed(false)
	}
	return cmd
}
