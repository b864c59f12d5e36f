package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"seqrename/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// DefaultExtension is appended to every sequential index
const DefaultExtension = ".jpg"

// Settings controls how target names are built and which entries are numbered
type Settings struct {
	Extension string   `yaml:"extension"` // Suffix appended to the index, including the dot
	Ignore    []string `yaml:"ignore"`    // Glob patterns for entry names left out of the listing
}

// Config represents the application configuration structure.
type Config struct {
	Settings    Settings `yaml:"settings"`
	Directories struct {
		Default string `yaml:"default"` // Directory used when none is given on the command line
	} `yaml:"directories"`
	Logging struct {
		Debug bool `yaml:"debug"` // Emit debug lines
		JSON  bool `yaml:"json"`  // One JSON object per log line
	} `yaml:"logging"`
}

// DefaultPath returns ~/.config/seqrename/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "seqrename", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
// A missing default file is not an error; defaults are returned instead.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfigFile(path)
	if errors.IsConfigNotFound(err) {
		return defaultConfig(), nil
	}
	return cfg, err
}

// LoadConfigFile loads configuration from a specific file path.
// Unlike LoadConfig, a missing file is reported as ConfigNotFound.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError("config file not found", path, errors.ConfigNotFound, err)
		}
		return nil, errors.FromOS("error reading config file", path, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if tempCfg.Settings.Extension != "" {
		cfg.Settings.Extension = tempCfg.Settings.Extension
	}
	if len(tempCfg.Settings.Ignore) > 0 {
		cfg.Settings.Ignore = tempCfg.Settings.Ignore
	}
	if tempCfg.Directories.Default != "" {
		cfg.Directories.Default = tempCfg.Directories.Default
	}
	cfg.Logging = tempCfg.Logging

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Settings.Extension = DefaultExtension
	cfg.Settings.Ignore = []string{}
	cfg.Directories.Default = "."
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if err := ValidateExtension(c.Settings.Extension); err != nil {
		return err
	}

	if _, err := c.IgnoreMatchers(); err != nil {
		return err
	}

	return nil
}

// ValidateExtension requires a leading dot, at least one more character
// and no path separator.
func ValidateExtension(ext string) error {
	switch {
	case len(ext) < 2 || ext[0] != '.':
		return errors.NewConfigError("extension must start with a dot", "settings.extension",
			errors.InvalidConfig, fmt.Errorf("got %q", ext))
	case strings.ContainsAny(ext, `/\`):
		return errors.NewConfigError("extension must not contain a path separator", "settings.extension",
			errors.InvalidConfig, fmt.Errorf("got %q", ext))
	}
	return nil
}

// IgnoreMatchers compiles the ignore patterns
func (c *Config) IgnoreMatchers() ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(c.Settings.Ignore))
	for i, pattern := range c.Settings.Ignore {
		if pattern == "" {
			return nil, errors.NewConfigError("empty ignore pattern", fmt.Sprintf("settings.ignore[%d]", i),
				errors.InvalidConfig, nil)
		}
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.NewConfigError("invalid ignore pattern", fmt.Sprintf("settings.ignore[%d]", i),
				errors.InvalidConfig, err)
		}
		matchers = append(matchers, g)
	}
	return matchers, nil
}
