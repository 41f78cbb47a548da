// Package config loads gradience-shell settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override the config file.
const (
	EnvDataDir      = "GRADIENCE_DATADIR"
	EnvSassc        = "GRADIENCE_SASSC"
	EnvShellVersion = "GRADIENCE_SHELL_VERSION"
)

const (
	defaultDataDir        = "/usr/share"
	defaultSassc          = "/usr/bin/sassc"
	defaultCompileTimeout = 60 * time.Second
)

// Config holds the resolved settings.
type Config struct {
	// DataDir is the install data directory containing gradience/shell.
	DataDir string `toml:"datadir"`

	// Sassc is the path of the SCSS compiler.
	Sassc string `toml:"sassc"`

	// CompileTimeout bounds one sassc run.
	CompileTimeout Duration `toml:"compile_timeout"`

	// TemplatesDir is the base directory for user template overrides.
	// Empty means $XDG_CONFIG_HOME/gradience/shell/templates.
	TemplatesDir string `toml:"templates_dir"`

	// ShellVersion pins the target shell version; 0 means detect.
	ShellVersion int `toml:"shell_version"`
}

// Duration is a time.Duration that reads and writes as a TOML string ("45s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:        defaultDataDir,
		Sassc:          defaultSassc,
		CompileTimeout: Duration{defaultCompileTimeout},
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/gradience, falling back to ~/.config/gradience.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gradience"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "gradience"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "shell.toml"), nil
}

// Load reads path on top of the defaults and applies environment overrides.
// A missing file is not an error unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 - user config file
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if cfg.TemplatesDir == "" {
		dir, err := ConfigDir()
		if err == nil {
			cfg.TemplatesDir = filepath.Join(dir, "shell", "templates")
		}
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvDataDir); ok && v != "" {
		c.DataDir = v
	}
	if v, ok := os.LookupEnv(EnvSassc); ok && v != "" {
		c.Sassc = v
	}
	if v, ok := os.LookupEnv(EnvShellVersion); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvShellVersion, err)
		}
		c.ShellVersion = n
	}
	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - config holds no secrets
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
