package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lazypower/hop/internal/store"
)

// Config holds all hop configuration. Everything has a working default;
// both the config file and the environment overrides are optional.
type Config struct {
	Store StoreConfig `toml:"store"`
	Shell ShellConfig `toml:"shell"`
}

type StoreConfig struct {
	// Path of the data file. Default: ~/.hop, overridable via HOP_DATA.
	Path string `toml:"path"`
	// DecayThreshold is the total rank mass that triggers the aging pass.
	DecayThreshold float32 `toml:"decay_threshold"`
	// RetentionFloor is the rank below which entries are dropped on write.
	RetentionFloor float32 `toml:"retention_floor"`
}

type ShellConfig struct {
	// Command is the shell function name, stripped from completion lines.
	// Overridable via HOP_CMD.
	Command string `toml:"command"`
}

// Default returns a Config with the stock thresholds.
func Default() Config {
	return Config{
		Store: StoreConfig{
			DecayThreshold: store.DefaultDecayThreshold,
			RetentionFloor: store.DefaultRetentionFloor,
		},
		Shell: ShellConfig{Command: "hop"},
	}
}

// Load layers the config file (~/.config/hop/config.toml) over the
// defaults, then the environment over both, and resolves the store path
// against the home directory when nothing set one.
func Load() (Config, error) {
	cfg := Default()

	if path, err := configPath(); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if v := os.Getenv("HOP_DATA"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("HOP_CMD"); v != "" {
		cfg.Shell.Command = v
	}

	if cfg.Store.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("locating home directory: %w", err)
		}
		cfg.Store.Path = filepath.Join(home, ".hop")
	}

	return cfg, nil
}

// OpenStore builds the store handle this config describes.
func (c Config) OpenStore() *store.Store {
	s := store.New(c.Store.Path)
	if c.Store.DecayThreshold > 0 {
		s.DecayThreshold = c.Store.DecayThreshold
	}
	if c.Store.RetentionFloor > 0 {
		s.RetentionFloor = c.Store.RetentionFloor
	}
	return s
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hop", "config.toml"), nil
}
