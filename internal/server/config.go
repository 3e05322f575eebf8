package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete server configuration.
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Tables []TableConfig  `hcl:"table,block"`
}

// ServerSettings contains server-level configuration.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// TableConfig defines one spades table.
type TableConfig struct {
	Name string `hcl:"name,label"`
	Seed *int64 `hcl:"seed,optional"`
}

// DefaultConfig returns the configuration used when no file is present:
// one table on the default port.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  ":8080",
			LogLevel: "info",
		},
		Tables: []TableConfig{
			{Name: "main"},
		},
	}
}

// LoadConfig loads server configuration from an HCL file, falling back
// to defaults when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Server.Address == "" {
		config.Server.Address = ":8080"
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if len(config.Tables) == 0 {
		config.Tables = DefaultConfig().Tables
	}

	return &config, nil
}

// Validate checks the configuration for conflicts.
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for _, table := range c.Tables {
		if table.Name == "" {
			return fmt.Errorf("table names must not be empty")
		}
		if seen[table.Name] {
			return fmt.Errorf("duplicate table name: %s", table.Name)
		}
		seen[table.Name] = true
	}
	return nil
}
