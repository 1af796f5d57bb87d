package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/conda"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/git"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/project"
)

func newDoctorCmd(ctx *project.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the environment for common issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(ctx, cmd)
		},
	}
}

func runDoctor(ctx *project.Context, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	ok := true

	// Which conda-compatible binaries are installed.
	for _, name := range []string{"micromamba", "mamba", "conda"} {
		fmt.Fprintf(out, "Checking %s... ", name)
		if path, err := exec.LookPath(name); err == nil {
			fmt.Fprintf(out, "found at %s\n", path)
		} else {
			fmt.Fprintln(out, "not found")
		}
	}
	for _, v := range []string{"MAMBA_EXE", "CONDA_EXE"} {
		if exe := os.Getenv(v); exe != "" {
			fmt.Fprintf(out, "$%s = %s\n", v, exe)
		}
	}

	fmt.Fprint(out, "Selecting backend... ")
	if tool, err := conda.Detect(); err == nil {
		fmt.Fprintln(out, tool.Name())
	} else {
		fmt.Fprintln(out, "NONE")
		fmt.Fprintln(out, "  Install micromamba, mamba, or conda and make sure it is on PATH.")
		ok = false
	}

	fmt.Fprint(out, "Checking git... ")
	if git.IsInstalled() {
		fmt.Fprintln(out, "found")
	} else {
		fmt.Fprintln(out, "NOT FOUND")
		fmt.Fprintln(out, "  git is required to locate the project root.")
		ok = false
	}

	if ctx == nil {
		fmt.Fprintln(out, "No soap configuration found (run `soap init` to create one)")
	} else {
		fmt.Fprintf(out, "Project: %s (%d environments, %d aliases)\n",
			ctx.Root, len(ctx.Config.Envs), len(ctx.Config.Aliases))
		for _, env := range ctx.Config.Envs {
			fmt.Fprintf(out, "  Checking %s (%s)... ", env.Name, env.YmlPath)
			if _, err := os.Stat(env.YmlPath); err == nil {
				fmt.Fprintln(out, "OK")
			} else {
				fmt.Fprintln(out, "MISSING")
				ok = false
			}
		}
	}

	if ok {
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}
