package config

import (
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/relink/pkg/errors"
)

// Generate writes a config file seeded with the current effective
// settings to path, creating parent directories as needed. It refuses to
// overwrite an existing file.
func Generate(cfg *Config, path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrConfigLoad, "config file already exists: %s", path)
	}

	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot create config directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot write config file %s", path)
	}
	return nil
}
