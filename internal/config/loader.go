// Package config provides configuration management for the seed
// validation tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from an optional YAML file and environment
// variables. Environment variables take precedence over file values.
// Environment variable format: SEEDCHECK_<SECTION>_<KEY>
// (e.g., SEEDCHECK_HOSTS_DIR, SEEDCHECK_LOGGING_LEVEL).
//
// An empty configPath skips the file and uses defaults plus environment
// only; a non-empty path must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults first
	setDefaults(v)

	// Configure environment variable binding
	v.SetEnvPrefix("SEEDCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values for all configuration options.
func setDefaults(v *viper.Viper) {
	// Seed layout defaults, matching the repository convention
	v.SetDefault("hosts_dir", filepath.Join("cloud-init", "v1", "hosts"))
	v.SetDefault("schema", filepath.Join("scripts", "ubuntu_autoinstall_schema.json"))

	// Run behavior defaults
	v.SetDefault("fail_fast", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
