// Package config loads relink's configuration.
//
// Layering, lowest to highest precedence: embedded defaults, the user
// config file at $XDG_CONFIG_HOME/relink/relink.toml, then RELINK_*
// environment variables. Command-line flags override all of it at the
// call site.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/relink/pkg/errors"
)

// ConfigFileName is the user config file name under the config dir
const ConfigFileName = "relink.toml"

// Config holds the user-tunable settings
type Config struct {
	// Exclude lists candidate names to leave in place. Glob patterns.
	Exclude []string `koanf:"exclude" toml:"exclude"`

	// Verify re-checks created links before counting success.
	Verify bool `koanf:"verify" toml:"verify"`

	// Format is the default output format (text, json, yaml, xml).
	Format string `koanf:"format" toml:"format"`
}

// UserConfigPath returns the expected location of the user config file
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "relink", ConfigFileName)
}

// Load builds the effective configuration.
func Load() (*Config, error) {
	return loadFrom(UserConfigPath())
}

func loadFrom(userPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", userPath)
		}
	}

	envProvider := env.Provider("RELINK_", ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, "RELINK_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}
	return &cfg, nil
}
