// Package config provides configuration management for the seed validation tool.
package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		HostsDir: "cloud-init/v1/hosts",
		Schema:   "scripts/ubuntu_autoinstall_schema.json",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_MissingHostsDir(t *testing.T) {
	cfg := validConfig()
	cfg.HostsDir = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should reject empty hosts_dir")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Errorf("error = %v, want mention of required", err)
	}
}

func TestValidate_MissingSchema(t *testing.T) {
	cfg := validConfig()
	cfg.Schema = ""

	if err := Validate(cfg); err == nil {
		t.Error("Validate() should reject empty schema path")
	}
}

func TestValidate_InvalidLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace2"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should reject unknown logging level")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
	if len(verrs) != 1 {
		t.Fatalf("len(errors) = %d, want 1", len(verrs))
	}
	if verrs[0].Tag != "oneof" {
		t.Errorf("Tag = %v, want oneof", verrs[0].Tag)
	}
}

func TestValidate_InvalidFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "text"

	if err := Validate(cfg); err == nil {
		t.Error("Validate() should reject unknown logging format")
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.HostsDir = ""
	cfg.Logging.Level = "loud"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
	if len(verrs) != 2 {
		t.Errorf("len(errors) = %d, want 2", len(verrs))
	}
	if !strings.Contains(err.Error(), "config validation failed") {
		t.Errorf("error = %v, want aggregated header", err)
	}
}
