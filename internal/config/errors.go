package config

import "fmt"

// MissingFileError reports that no soap configuration was found at the
// project root: no soap.toml, and no [tool.soap] table in pyproject.toml.
type MissingFileError struct {
	Root string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("no soap configuration found in %s (expected soap.toml or a [tool.soap] table in pyproject.toml)", e.Root)
}

// UnknownEnvError reports a reference to an environment name that is not
// declared in the configuration.
type UnknownEnvError struct {
	Name string
}

func (e *UnknownEnvError) Error() string {
	return fmt.Sprintf("environment %q is not declared in the configuration", e.Name)
}

// NameCollisionError reports an alias that shadows a built-in command name.
type NameCollisionError struct {
	Alias string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("alias %q shadows a built-in command; rename it", e.Alias)
}
