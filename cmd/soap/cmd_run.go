package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/project"
)

func newRunCmd(ctx *project.Context, loadErr error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run --env <name> [--] <command...>",
		Short: "Run a command in an environment, syncing it first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			envName, _ := cmd.Flags().GetString("env")
			return dispatch(ctx, invocation{
				command: strings.Join(args, " "),
				envName: envName,
			})
		},
	}
	cmd.Flags().String("env", "", "Environment in which to run the command")
	_ = cmd.MarkFlagRequired("env")
	return cmd
}
