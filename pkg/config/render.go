package config

import (
	"github.com/HumanBot000/BoilerGen/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// ToTOML renders the effective configuration in the same layout as the
// config files it was loaded from
func ToTOML(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}
