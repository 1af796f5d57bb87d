// Package config loads soap project configuration from soap.toml or from the
// [tool.soap] table of pyproject.toml. It normalizes the two declaration
// shapes for environments and aliases (bare string vs full table) into typed
// Env and Alias values with all paths resolved against the project root.
package config
