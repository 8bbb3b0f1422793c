package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a saved config file, using the canonical
// flat key scheme.
type fileConfig struct {
	Port         int    `yaml:"port"`
	Mode         string `yaml:"mode"`
	RootDir      string `yaml:"root_dir"`
	IndexPage    string `yaml:"index_page"`
	NotFoundPage string `yaml:"not_found_page"`
}

// Save serializes cfg to the YAML config file at path, creating parent
// directories as needed. The written file round-trips through [OpenStore].
// Save is used by the settings editor, never during resolution. Saving a
// released Config returns [ErrReleased].
func Save(cfg *Config, path string) error {
	if cfg.released {
		return ErrReleased
	}

	data, err := yaml.Marshal(fileConfig{
		Port:         cfg.Port,
		Mode:         string(cfg.Mode),
		RootDir:      cfg.RootDir,
		IndexPage:    cfg.IndexPage,
		NotFoundPage: cfg.NotFoundPage,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
