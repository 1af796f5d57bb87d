package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/git"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter soap.toml for this project",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmd.Flags().String("env", "", "Name of the first environment")
	cmd.Flags().String("file", "", "Path to its environment YAML file")
	cmd.Flags().Bool("force", false, "Overwrite an existing soap.toml")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	root, err := git.Root(".")
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	configPath := filepath.Join(root, "soap.toml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("soap.toml already exists at %s (use --force to overwrite)", configPath)
	}

	name, _ := cmd.Flags().GetString("env")
	file, _ := cmd.Flags().GetString("file")

	if name == "" || file == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; pass --env and --file")
		}
		if name == "" {
			name, err = promptInput("Name of the first environment", "test", validateEnvName)
			if err != nil {
				return err
			}
		}
		if file == "" {
			file, err = promptInput("Path to its environment file", "devtools/conda-envs/test_env.yml", validateSpecPath)
			if err != nil {
				return err
			}
		}
	}
	if err := validateEnvName(name); err != nil {
		return err
	}
	if err := validateSpecPath(file); err != nil {
		return err
	}

	data := fmt.Sprintf("[envs]\n%s = %q\n", name, file)
	if err := os.WriteFile(configPath, []byte(data), 0644); err != nil {
		return fmt.Errorf("writing soap.toml: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s\n", configPath)

	// Scaffold the environment file too, unless one already exists.
	specPath := filepath.Join(root, file)
	if _, err := os.Stat(specPath); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(specPath), 0755); err != nil {
			return fmt.Errorf("creating environment file directory: %w", err)
		}
		starter := fmt.Sprintf("name: %s\nchannels:\n  - conda-forge\ndependencies:\n  - python\n", name)
		if err := os.WriteFile(specPath, []byte(starter), 0644); err != nil {
			return fmt.Errorf("writing environment file: %w", err)
		}
		fmt.Fprintf(out, "Wrote %s\n", specPath)
	}

	return nil
}

func validateEnvName(name string) error {
	if name == "" {
		return fmt.Errorf("environment name must not be empty")
	}
	if strings.ContainsAny(name, " /\\") {
		return fmt.Errorf("environment name must not contain spaces or slashes")
	}
	return nil
}

func validateSpecPath(path string) error {
	if path == "" {
		return fmt.Errorf("environment file path must not be empty")
	}
	if filepath.IsAbs(path) {
		return fmt.Errorf("environment file path must be relative to the project root")
	}
	return nil
}
