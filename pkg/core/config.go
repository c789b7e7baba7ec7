// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable that overrides a config key
const EnvPrefix = "DEPFIND"

// Config holds depfind configuration
type Config struct {
	// Platform overrides detection (posix, darwin, windows); empty detects
	Platform string `mapstructure:"platform" yaml:"platform,omitempty"`
	// Jobs is the parallel job count handed to the build driver
	Jobs   int  `mapstructure:"jobs" yaml:"jobs,omitempty"`
	Debug  bool `mapstructure:"debug" yaml:"debug,omitempty"`
	Static bool `mapstructure:"static" yaml:"static,omitempty"`
	// Features enables platform library sets: networking, random_number
	Features []string `mapstructure:"features" yaml:"features,omitempty"`
	// Libraries lists Boost libraries to link by logical name (system, thread)
	Libraries []string `mapstructure:"libraries" yaml:"libraries,omitempty"`
	// IncludePaths and LibraryPaths are project directories added ahead of
	// anything resolved
	IncludePaths []string    `mapstructure:"include_paths" yaml:"include_paths,omitempty"`
	LibraryPaths []string    `mapstructure:"library_paths" yaml:"library_paths,omitempty"`
	Boost        BoostConfig `mapstructure:"boost" yaml:"boost,omitempty"`
	// Output is the default render format: yaml, json, toml or flags
	Output string `mapstructure:"output" yaml:"output,omitempty"`
}

// BoostConfig holds Boost-specific settings
type BoostConfig struct {
	// MinVersion is a semver constraint the located headers must meet (">= 1.39")
	MinVersion string `mapstructure:"min_version" yaml:"min_version,omitempty"`
}

// Feature names accepted in Config.Features
const (
	FeatureNetworking   = "networking"
	FeatureRandomNumber = "random_number"
)

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Platform:     "", // Auto-detect
		Jobs:         2,
		Features:     []string{},
		Libraries:    []string{},
		IncludePaths: []string{},
		LibraryPaths: []string{},
		Output:       "yaml",
	}
}

// DefaultPath returns ~/.config/depfind/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "depfind.yaml")
	}
	return filepath.Join(home, ".config", "depfind", "config.yaml")
}

// LoadConfig loads configuration from file and environment. A missing
// file yields the defaults. The file is checked against the config schema
// before it is decoded.
//
// Every key can be overridden with DEPFIND_<KEY>; jobs also honours NUM_CPU.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("jobs", EnvPrefix+"_JOBS", "NUM_CPU"); err != nil {
		return nil, fmt.Errorf("binding env: %w", err)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		issues, err := Validate(data)
		if err != nil {
			return nil, fmt.Errorf("validating config: %w", err)
		}
		if len(issues) > 0 {
			return nil, issuesError(path, issues)
		}

		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	case os.IsNotExist(err):
		// defaults plus environment
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Check validates values that the schema cannot express
func (c *Config) Check() error {
	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalidConfig, c.Jobs)
	}
	if _, err := c.VersionConstraint(); err != nil {
		return err
	}
	return nil
}

// VersionConstraint parses boost.min_version, nil when unset
func (c *Config) VersionConstraint() (*semver.Constraints, error) {
	if c.Boost.MinVersion == "" {
		return nil, nil
	}
	constraint, err := semver.NewConstraint(c.Boost.MinVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: boost.min_version %q: %v", ErrInvalidConfig, c.Boost.MinVersion, err)
	}
	return constraint, nil
}

// HasFeature reports whether name is enabled
func (c *Config) HasFeature(name string) bool {
	for _, f := range c.Features {
		if f == name {
			return true
		}
	}
	return false
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("platform", cfg.Platform)
	v.SetDefault("jobs", cfg.Jobs)
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("static", cfg.Static)
	v.SetDefault("features", cfg.Features)
	v.SetDefault("libraries", cfg.Libraries)
	v.SetDefault("include_paths", cfg.IncludePaths)
	v.SetDefault("library_paths", cfg.LibraryPaths)
	v.SetDefault("boost.min_version", cfg.Boost.MinVersion)
	v.SetDefault("output", cfg.Output)
}
