package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	materror "github.com/msto63/mAT/pkg/core/error"
)

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	Bank      BankConfig      `toml:"bank" yaml:"bank"`
	Generator GeneratorConfig `toml:"generator" yaml:"generator"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// BankConfig holds problem bank storage settings
type BankConfig struct {
	Path string `toml:"path" yaml:"path"`
}

// GeneratorConfig holds defaults for problem generation
type GeneratorConfig struct {
	Domain string `toml:"domain" yaml:"domain"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Name:      "mAT",
			LogLevel:  "info",
			LogFormat: "text",
		},
		Bank: BankConfig{
			Path: "./data/bank.db",
		},
		Generator: GeneratorConfig{
			Domain: "equations-ct",
		},
	}
}

// searchPaths lists the locations probed when no explicit path is given
func searchPaths() []string {
	paths := []string{
		"./config.toml",
		"./configs/config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "meinalgebratrainer", "config.toml"))
	}
	return paths
}

// Load reads the configuration from the given path. An empty path probes the
// default search locations and falls back to Default() when nothing is found.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, candidate := range searchPaths() {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, materror.Wrap(err, fmt.Sprintf("failed to read config file %s", path)).
			WithCode(materror.CodeConfigError)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, materror.Wrap(err, fmt.Sprintf("failed to parse YAML config %s", path)).
				WithCode(materror.CodeConfigError)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, materror.Wrap(err, fmt.Sprintf("failed to parse TOML config %s", path)).
				WithCode(materror.CodeConfigError)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch strings.ToLower(c.General.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return materror.Newf("invalid log level %q", c.General.LogLevel).
			WithCode(materror.CodeConfigError)
	}
	switch strings.ToLower(c.General.LogFormat) {
	case "", "text", "json":
	default:
		return materror.Newf("invalid log format %q", c.General.LogFormat).
			WithCode(materror.CodeConfigError)
	}
	if c.Bank.Path == "" {
		return materror.New("bank path cannot be empty").
			WithCode(materror.CodeConfigError)
	}
	if c.Generator.Domain == "" {
		return materror.New("generator domain cannot be empty").
			WithCode(materror.CodeConfigError)
	}
	return nil
}
