package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// rawEnv is the full table shape of an environment declaration.
type rawEnv struct {
	YmlPath                string   `toml:"yml_path"`
	EnvPath                string   `toml:"env_path"`
	InstallCurrent         *bool    `toml:"install_current"`
	AdditionalChannels     []string `toml:"additional_channels"`
	AdditionalDependencies []string `toml:"additional_dependencies"`
}

// rawAlias is the full table shape of an alias declaration.
type rawAlias struct {
	Cmd             string `toml:"cmd"`
	Chdir           bool   `toml:"chdir"`
	Env             string `toml:"env"`
	Description     string `toml:"description"`
	PassthroughArgs bool   `toml:"passthrough_args"`
}

// rawTables holds the two configuration tables before shape normalization.
// Values stay as primitives because each entry may be either a bare string
// or a full table.
type rawTables struct {
	Envs    map[string]toml.Primitive `toml:"envs"`
	Aliases map[string]toml.Primitive `toml:"aliases"`
}

// Load reads the project configuration from root. soap.toml wins when both
// files exist; pyproject.toml is consulted for a [tool.soap] table otherwise.
func Load(root string) (*Config, error) {
	soapPath := filepath.Join(root, "soap.toml")
	if data, err := os.ReadFile(soapPath); err == nil {
		cfg, perr := Parse(data, root)
		if perr != nil {
			return nil, fmt.Errorf("%s: %w", soapPath, perr)
		}
		cfg.Path = soapPath
		return cfg, nil
	}

	pyPath := filepath.Join(root, "pyproject.toml")
	if data, err := os.ReadFile(pyPath); err == nil {
		cfg, perr := ParsePyproject(data, root)
		if perr != nil {
			return nil, fmt.Errorf("%s: %w", pyPath, perr)
		}
		cfg.Path = pyPath
		return cfg, nil
	}

	return nil, &MissingFileError{Root: root}
}

// Parse parses soap.toml content.
func Parse(data []byte, root string) (*Config, error) {
	var raw rawTables
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}
	return build(md, raw, root)
}

// ParsePyproject parses pyproject.toml content, reading the [tool.soap] table.
func ParsePyproject(data []byte, root string) (*Config, error) {
	var py struct {
		Tool struct {
			Soap rawTables `toml:"soap"`
		} `toml:"tool"`
	}
	md, err := toml.Decode(string(data), &py)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}
	if !md.IsDefined("tool", "soap") {
		return nil, &MissingFileError{Root: root}
	}
	return build(md, py.Tool.Soap, root)
}

func build(md toml.MetaData, raw rawTables, root string) (*Config, error) {
	cfg := &Config{
		Root: root,
		Envs: make(map[string]Env, len(raw.Envs)),
	}

	for name, prim := range raw.Envs {
		env, err := buildEnv(md, name, prim, root)
		if err != nil {
			return nil, err
		}
		cfg.Envs[name] = env
	}

	names := make([]string, 0, len(raw.Aliases))
	for name := range raw.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		alias, err := buildAlias(md, name, raw.Aliases[name])
		if err != nil {
			return nil, err
		}
		if alias.Env != "" {
			if _, ok := cfg.Envs[alias.Env]; !ok {
				return nil, fmt.Errorf("alias %q: %w", name, &UnknownEnvError{Name: alias.Env})
			}
		}
		cfg.Aliases = append(cfg.Aliases, alias)
	}

	return cfg, nil
}

// buildEnv normalizes either declaration shape: a bare string is the
// yml_path, a table may set every field.
func buildEnv(md toml.MetaData, name string, prim toml.Primitive, root string) (Env, error) {
	var re rawEnv

	var short string
	if err := md.PrimitiveDecode(prim, &short); err == nil {
		re.YmlPath = short
	} else if err := md.PrimitiveDecode(prim, &re); err != nil {
		return Env{}, fmt.Errorf("env %q: %w", name, err)
	}

	if re.YmlPath == "" {
		return Env{}, fmt.Errorf("env %q: yml_path is required", name)
	}

	env := Env{
		Name:                   name,
		Root:                   root,
		YmlPath:                absAgainst(root, re.YmlPath),
		InstallCurrent:         true,
		AdditionalChannels:     re.AdditionalChannels,
		AdditionalDependencies: re.AdditionalDependencies,
	}
	if re.InstallCurrent != nil {
		env.InstallCurrent = *re.InstallCurrent
	}
	if re.EnvPath != "" {
		env.EnvPath = absAgainst(root, re.EnvPath)
	} else {
		env.EnvPath = filepath.Join(root, ".soap", name)
	}
	return env, nil
}

// buildAlias normalizes either declaration shape: a bare string is the
// command, a table may set every field.
func buildAlias(md toml.MetaData, name string, prim toml.Primitive) (Alias, error) {
	var ra rawAlias

	var short string
	if err := md.PrimitiveDecode(prim, &short); err == nil {
		ra.Cmd = short
	} else if err := md.PrimitiveDecode(prim, &ra); err != nil {
		return Alias{}, fmt.Errorf("alias %q: %w", name, err)
	}

	if ra.Cmd == "" {
		return Alias{}, fmt.Errorf("alias %q: cmd is required", name)
	}

	alias := Alias{
		Name:            name,
		Cmd:             ra.Cmd,
		Chdir:           ra.Chdir,
		Env:             ra.Env,
		Description:     ra.Description,
		PassthroughArgs: ra.PassthroughArgs,
	}
	if alias.Description == "" {
		alias.Description = "Alias for `" + alias.Cmd + "`"
	}
	return alias, nil
}

func absAgainst(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
