// Package config loads quarterdeck's configuration by merging the embedded
// defaults with the user's config file.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
)

//go:embed default.toml
var defaultConfigData string

// Config is the merged runtime configuration.
type Config struct {
	DefaultFrontend string                            `toml:"default_frontend"`
	MenuStyle       string                            `toml:"menu_style"`
	InstallRoot     string                            `toml:"install_root"`
	CatalogPath     string                            `toml:"catalog_path"`
	LogLevel        string                            `toml:"log_level"`
	Frontends       map[string]map[string]interface{} `toml:"frontends"`
}

// FrontendCommand describes how to run a menu frontend.
type FrontendCommand struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// configFile mirrors Config with pointer fields so an absent key in the user
// file leaves the default untouched.
type configFile struct {
	DefaultFrontend *string                           `toml:"default_frontend"`
	MenuStyle       *string                           `toml:"menu_style"`
	InstallRoot     *string                           `toml:"install_root"`
	CatalogPath     *string                           `toml:"catalog_path"`
	LogLevel        *string                           `toml:"log_level"`
	Frontends       map[string]map[string]interface{} `toml:"frontends"`
}

// UserConfigPath is where the user's config file lives.
func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "quarterdeck", "config.toml")
}

// StatePath is where the launch history lives.
func StatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "quarterdeck", "recent.toml")
}

// Load merges the embedded defaults with the user config file, if present.
// A malformed user file is an error; a missing one is not.
func Load() (*Config, error) {
	cfg, err := loadDefault()
	if err != nil {
		return nil, fmt.Errorf("load default config: %w", err)
	}

	path := UserConfigPath()
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	var user configFile
	if _, err := toml.DecodeFile(path, &user); err != nil {
		return nil, fmt.Errorf("load user config %s: %w", path, err)
	}
	merge(cfg, &user)
	return cfg, nil
}

func loadDefault() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func merge(cfg *Config, user *configFile) {
	if user.DefaultFrontend != nil && *user.DefaultFrontend != "" {
		cfg.DefaultFrontend = *user.DefaultFrontend
	}
	if user.MenuStyle != nil && *user.MenuStyle != "" {
		cfg.MenuStyle = *user.MenuStyle
	}
	if user.InstallRoot != nil && *user.InstallRoot != "" {
		cfg.InstallRoot = *user.InstallRoot
	}
	if user.CatalogPath != nil && *user.CatalogPath != "" {
		cfg.CatalogPath = *user.CatalogPath
	}
	if user.LogLevel != nil && *user.LogLevel != "" {
		cfg.LogLevel = *user.LogLevel
	}
	for name, opts := range user.Frontends {
		if cfg.Frontends == nil {
			cfg.Frontends = make(map[string]map[string]interface{})
		}
		cfg.Frontends[name] = opts
	}
}

// FrontendOptions decodes the options table for a named frontend. An absent
// table yields a zero command, which frontends fill with their defaults.
func (c *Config) FrontendOptions(name string) (FrontendCommand, error) {
	var fc FrontendCommand
	opts, ok := c.Frontends[name]
	if !ok {
		return fc, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &fc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fc, err
	}
	if err := dec.Decode(opts); err != nil {
		return fc, fmt.Errorf("frontend %s options: %w", name, err)
	}
	return fc, nil
}

// InitUserConfig writes the default config to the user config path so it can
// be edited. Refuses to clobber an existing file.
func InitUserConfig() (string, error) {
	path := UserConfigPath()
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigData), 0o644); err != nil {
		return path, fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}
