package main

import (
	"os"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/CaliLuke/go-cqlbridge/abi"
)

// Config is the optional YAML configuration of abigen. Command-line flags
// override the values read from the file.
type Config struct {
	// Table is the path of the constructor table. Empty means the built-in table.
	Table     string `yaml:"table"`
	Prefix    string `yaml:"prefix"`
	TableName string `yaml:"table_name"`
	Namespace string `yaml:"namespace"`
}

// loadConfig reads path. An empty path yields the zero Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// renderConfig converts the file config to renderer settings.
func (c Config) renderConfig() abi.RenderConfig {
	source := c.Table
	if source == "" {
		source = "built-in table"
	}
	return abi.RenderConfig{
		Prefix:    c.Prefix,
		TableName: c.TableName,
		Namespace: c.Namespace,
		Source:    source,
	}
}

// loadTable parses the configured table or returns the built-in one.
func (c Config) loadTable() (*abi.Table, error) {
	if c.Table == "" {
		return abi.Default(), nil
	}
	return abi.ParseFile(c.Table)
}
