// Package config loads hdrgen configuration with Viper.
//
// Precedence (lowest to highest): defaults < ~/.hdrgen/config.toml <
// project hdrgen.toml (found by walking up from the working directory) <
// HDRGEN_* environment variables.
//
// The CLI argument surface stays a single header path; target language and
// verbosity live here instead of in flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/hdrgen/errors"
)

// Config holds every tunable the tool reads
type Config struct {
	// Lang is the target language for generated enums: zig, go, rust
	Lang string `mapstructure:"lang"`

	// GoPackage is the package clause used by the Go emitter
	GoPackage string `mapstructure:"go_package"`

	// Verbosity controls diagnostic logging on stderr (0 warn, 1 info, 2 debug)
	Verbosity int `mapstructure:"verbosity"`
}

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the hdrgen configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// SetDefaults registers default values on the given Viper instance
func SetDefaults(v *viper.Viper) {
	v.SetDefault("lang", "zig")
	v.SetDefault("go_package", "ids")
	v.SetDefault("verbosity", 0)
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("HDRGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig searches for hdrgen.toml by walking up the directory
// tree. Returns the path to the first config file found, or empty string.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "hdrgen.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges configuration files in precedence order: user
// config first, then a project config if one is found.
func mergeConfigFiles(v *viper.Viper) {
	homeDir, _ := os.UserHomeDir()

	configPaths := []string{
		filepath.Join(homeDir, ".hdrgen", "config.toml"),
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		configPaths = append(configPaths, projectConfig)
	}

	for _, configPath := range configPaths {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}

		fileViper := viper.New()
		fileViper.SetConfigFile(configPath)
		fileViper.SetConfigType("toml")

		if err := fileViper.ReadInConfig(); err == nil {
			// File values land in the config layer, below env vars
			_ = v.MergeConfigMap(fileViper.AllSettings())
		}
	}
}
