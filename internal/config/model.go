package config

// Config is the loaded soap configuration for one project.
type Config struct {
	// Root is the project root all relative paths were resolved against.
	Root string
	// Path is the file the configuration was read from.
	Path string
	// Envs maps environment names to their declarations.
	Envs map[string]Env
	// Aliases lists user-defined command aliases, sorted by name so the
	// generated command surface is stable across runs.
	Aliases []Alias
}

// Env declares a single conda environment.
type Env struct {
	Name string
	// Root is the project root, kept for operations that run relative to it.
	Root string
	// YmlPath is the absolute path to the environment YAML file.
	YmlPath string
	// EnvPath is the absolute prefix the environment is installed into.
	// Defaults to <root>/.soap/<name>.
	EnvPath string
	// InstallCurrent installs the current project into the environment
	// (pip install -e) after each create or update. Defaults to true.
	InstallCurrent bool
	// AdditionalChannels are prepended to the environment file's channels.
	AdditionalChannels []string
	// AdditionalDependencies are appended to the environment file's
	// dependency list.
	AdditionalDependencies []string
}

// Alias declares a named shortcut for a shell command, optionally bound to
// an environment and a working-directory policy.
type Alias struct {
	// Name becomes the sub-command used to invoke the alias.
	Name string
	// Cmd is the shell command the alias runs.
	Cmd string
	// Chdir runs the command from the project root instead of the caller's
	// working directory.
	Chdir bool
	// Env is the environment the command runs in when --env is not passed.
	// Empty means no environment: the command runs bare and nothing is
	// reconciled.
	Env string
	// Description is the help text for the generated sub-command.
	Description string
	// PassthroughArgs appends unrecognised command-line arguments to Cmd.
	PassthroughArgs bool
}
