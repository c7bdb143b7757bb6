package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/paths"
)

// EnvPrefix is the prefix of environment variables read into the config.
// MUFFIN_TEMPLATE_ROOT maps to template.root, MUFFIN_SECRET_LENGTH to
// secret.length.
const EnvPrefix = "MUFFIN_"

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// UserConfig is the user-level config file. Empty selects
	// $XDG_CONFIG_HOME/muffin/config.toml.
	UserConfig string

	// ProjectDir is searched for a .muffin.toml. Empty skips it.
	ProjectDir string

	// Overrides are applied last, keyed by dotted path ("template.root").
	Overrides map[string]interface{}
}

// Load builds the effective configuration.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	userConfig := opts.UserConfig
	if userConfig == "" {
		userConfig = paths.UserConfigFile()
	}
	if err := loadFileIfExists(k, userConfig); err != nil {
		return nil, err
	}

	// 3. Project config
	if opts.ProjectDir != "" {
		if err := loadFileIfExists(k, filepath.Join(opts.ProjectDir, paths.ProjectConfigFile)); err != nil {
			return nil, err
		}
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Overrides from flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// envKey maps MUFFIN_SECTION_SOME_KEY to section.some_key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}
