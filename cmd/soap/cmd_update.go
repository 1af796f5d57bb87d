package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/conda"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/config"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/drift"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/project"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/reconcile"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/ui"
)

func newUpdateCmd(ctx *project.Context, loadErr error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [--env <name>]",
		Short: "Sync declared environments with their spec files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if loadErr != nil {
				return loadErr
			}
			envName, _ := cmd.Flags().GetString("env")
			recreate, _ := cmd.Flags().GetBool("recreate")
			return runUpdate(ctx, cmd, envName, recreate)
		},
	}
	cmd.Flags().String("env", "", "Environment to update (default: all)")
	cmd.Flags().Bool("recreate", false, "Delete and recreate instead of updating in place")
	return cmd
}

func runUpdate(ctx *project.Context, cmd *cobra.Command, envName string, recreate bool) error {
	envs, err := selectEnvs(ctx.Config, envName)
	if err != nil {
		return err
	}

	tool, err := conda.Detect()
	if err != nil {
		return err
	}
	rec := &reconcile.Reconciler{Tool: tool, Out: cmd.ErrOrStderr()}

	out := cmd.OutOrStdout()
	plural := "s"
	if len(envs) == 1 {
		plural = ""
	}
	ui.Headingf(out, "Updating %d environment%s", len(envs), plural)

	for _, env := range envs {
		ui.Headingf(out, "Preparing environment %q from %s in %s", env.Name, env.YmlPath, env.EnvPath)
		if recreate {
			if err := rec.Recreate(env); err != nil {
				return err
			}
			continue
		}
		status, err := rec.Ensure(env)
		if err != nil {
			return err
		}
		if status == drift.Synced {
			ui.Dimf(out, "Environment %q is already up to date", env.Name)
		}
	}
	return nil
}

// selectEnvs returns the named environment, or all of them in name order.
func selectEnvs(cfg *config.Config, name string) ([]config.Env, error) {
	if name != "" {
		env, ok := cfg.Envs[name]
		if !ok {
			return nil, &config.UnknownEnvError{Name: name}
		}
		return []config.Env{env}, nil
	}

	names := make([]string, 0, len(cfg.Envs))
	for n := range cfg.Envs {
		names = append(names, n)
	}
	sort.Strings(names)

	envs := make([]config.Env, 0, len(names))
	for _, n := range names {
		envs = append(envs, cfg.Envs[n])
	}
	return envs, nil
}
