package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/conda"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/project"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/reconcile"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/ui"
)

func newStatusCmd(ctx *project.Context, loadErr error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the sync status of each declared environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if loadErr != nil {
				return loadErr
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			return runStatus(ctx, cmd, asJSON)
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type envStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Spec   string `json:"spec"`
	Prefix string `json:"prefix"`
}

func runStatus(ctx *project.Context, cmd *cobra.Command, asJSON bool) error {
	envs, err := selectEnvs(ctx.Config, "")
	if err != nil {
		return err
	}

	tool, err := conda.Detect()
	if err != nil {
		return err
	}
	rec := &reconcile.Reconciler{Tool: tool, Out: cmd.ErrOrStderr()}

	statuses := make([]envStatus, 0, len(envs))
	for _, env := range envs {
		status, err := rec.Status(env)
		if err != nil {
			return err
		}
		statuses = append(statuses, envStatus{
			Name:   env.Name,
			Status: status.String(),
			Spec:   env.YmlPath,
			Prefix: env.EnvPath,
		})
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tbl := ui.NewTable(out, "ENV", "STATUS", "SPEC", "PREFIX")
	for _, s := range statuses {
		tbl.Row(s.Name, s.Status, s.Spec, s.Prefix)
	}
	return tbl.Flush()
}
