package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/logging"
	"github.com/arthur-debert/relines/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	userConfigName    = "config.toml"
	ProjectConfigName = ".relines.toml"
	EnvPrefix         = "RELINES_"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// LoadOptions selects the optional layers
type LoadOptions struct {
	// ConfigFile is an explicit file (--config). It must exist.
	ConfigFile string
	// WorkDir holds the project config; defaults to the current directory
	WorkDir string
	// Overrides are applied last, keyed like "output.eol"
	Overrides map[string]interface{}
}

// DefaultContent returns the embedded defaults file
func DefaultContent() string {
	return string(defaultConfig)
}

// Default returns the built-in configuration, ignoring files and the
// environment.
func Default() *Config {
	cfg, err := load(LoadOptions{}, false)
	if err != nil {
		// The embedded defaults are covered by tests
		panic(err)
	}
	return cfg
}

// UserConfigPath returns $XDG_CONFIG_HOME/relines/config.toml
func UserConfigPath() string {
	return filepath.Join(paths.ConfigDir(), userConfigName)
}

// Load builds the configuration from every layer
func Load(opts LoadOptions) (*Config, error) {
	return load(opts, true)
}

func load(opts LoadOptions, external bool) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if external {
		// 2. User config, 3. project config
		workDir := opts.WorkDir
		if workDir == "" {
			workDir = "."
		}
		for _, path := range []string{UserConfigPath(), filepath.Join(workDir, ProjectConfigName)} {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			logger.Debug().Str("path", path).Msg("Loaded config file")
		}

		// 4. Explicit config
		if opts.ConfigFile != "" {
			configFile := paths.ExpandPath(opts.ConfigFile)
			if _, err := os.Stat(configFile); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.ConfigFile).
					WithDetail("path", opts.ConfigFile)
			}
			if err := loadFile(k, configFile); err != nil {
				return nil, err
			}
			logger.Debug().Str("path", configFile).Msg("Loaded config file")
		}
	}

	// 5. Environment
	if external {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps RELINES_OUTPUT_EOL to output.eol and
// RELINES_ASSEMBLE_ITEM_PREFIX to assemble.item_prefix
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
