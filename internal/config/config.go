// Package config provides configuration management for the seed
// validation tool.
package config

// Config is the root configuration structure for the seed validation
// tool.
type Config struct {
	HostsDir string        `mapstructure:"hosts_dir" validate:"required"`
	Schema   string        `mapstructure:"schema" validate:"required"`
	FailFast bool          `mapstructure:"fail_fast"`
	Logging  LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig contains configurations for logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}
