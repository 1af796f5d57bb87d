// Package project resolves the enclosing project for an invocation: the Git
// repository root and the soap configuration found there.
package project

import (
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/config"
	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/git"
)

// Context holds the resolved root and loaded configuration for a project.
type Context struct {
	Root   string
	Config *config.Config
}

// Load discovers the Git root enclosing dir and loads the configuration
// found there.
func Load(dir string) (*Context, error) {
	root, err := git.Root(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	return &Context{Root: root, Config: cfg}, nil
}
