package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "BOILERGEN_"
	// ProjectConfigFile is looked up in the working directory
	ProjectConfigFile = ".boilergen.toml"
)

// LoadOptions tells Load where to look and what the command line set
type LoadOptions struct {
	// WorkDir is where the project file is looked up. Empty means ".".
	WorkDir string
	// UserConfigPath overrides the XDG user config location
	UserConfigPath string
	// Overrides holds flag values keyed by their dotted config key.
	// Only flags the user actually set belong here.
	Overrides map[string]interface{}
}

// Load builds the effective configuration. Later layers win:
// embedded defaults, user file, project file, environment, flags.
func Load(opts LoadOptions) (*Config, error) {
	k, err := load(opts)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

func load(opts LoadOptions) (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath = UserConfigPath()
	}
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	for _, path := range []string{userPath, filepath.Join(workDir, ProjectConfigFile)} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	return k, nil
}

// envKey maps BOILERGEN_GENERATION_STRICT_DEPENDENCIES to
// generation.strict_dependencies. Only the first underscore separates the
// section, so multi-word keys survive.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	return section + "." + rest
}

// UserConfigPath returns $XDG_CONFIG_HOME/boilergen/config.toml.
// The variable is read on every call so tests can redirect it.
func UserConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "boilergen", "config.toml")
}
