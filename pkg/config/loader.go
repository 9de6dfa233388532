package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	dserrors "github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/logging"
)

// EnvPrefix marks environment variables read as configuration.
const EnvPrefix = "DOTSYNC_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// DefaultsContent returns the embedded default configuration.
func DefaultsContent() string {
	return string(defaultConfig)
}

// Load builds the effective configuration. configFile may be empty or
// point at a missing file; overrides use dotted keys ("sync.source_root").
func Load(configFile string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, dserrors.Wrap(err, dserrors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, dserrors.Wrapf(err, dserrors.ErrConfigParse, "failed to load config from %s", configFile).
					WithDetail("path", configFile)
			}
			logger.Debug().Str("path", configFile).Msg("loaded user config")
		} else if !os.IsNotExist(err) {
			return nil, dserrors.Wrapf(err, dserrors.ErrConfigLoad, "cannot read config %s", configFile)
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, dserrors.Wrap(err, dserrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flags
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, dserrors.Wrap(err, dserrors.ErrConfigLoad, "failed to apply overrides")
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
		return nil, dserrors.Wrap(err, dserrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps DOTSYNC_SYNC__WORK_MARKER to sync.work_marker.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Validate checks the values the engine cannot run without.
func Validate(cfg *Config) error {
	if cfg.Sync.BackupPrefix == "" {
		return dserrors.New(dserrors.ErrConfigValid, "sync.backup_prefix must not be empty")
	}
	if cfg.Sync.WorkMarker == "" || strings.ContainsRune(cfg.Sync.WorkMarker, '/') {
		return dserrors.Newf(dserrors.ErrConfigValid, "sync.work_marker must be a directory name, got %q", cfg.Sync.WorkMarker)
	}
	if cfg.Profile.Target == "" {
		return dserrors.New(dserrors.ErrConfigValid, "profile.target must not be empty")
	}
	for name, ed := range cfg.Editors {
		if ed.CLI == "" {
			return dserrors.Newf(dserrors.ErrConfigValid, "editors.%s.cli must not be empty", name).
				WithDetail("editor", name)
		}
	}
	switch strings.ToLower(cfg.Output.Format) {
	case "", "auto", "term", "terminal", "text", "plain", "json":
	default:
		return dserrors.Newf(dserrors.ErrConfigValid, "unknown output.format %q", cfg.Output.Format)
	}
	return nil
}
