package config

import (
	"github.com/muffin-cms/muffin/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Render serializes cfg as TOML, in the same shape Load reads.
func Render(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
