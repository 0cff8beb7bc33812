package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is one run's configuration: the pylint argument string plus the
// executable to invoke. The argument string is tokenized at run start; no
// other knobs touch the invocation.
type Config struct {
	Binary string `yaml:"binary"`
	Args   string `yaml:"args"`
}

func NewConfig() *Config {
	return &Config{
		Binary: "pylint",
		Args:   "",
	}
}

// LoadConfig looks for a defaults file in order of preference and falls back
// to the built-in defaults when none exists.
func LoadConfig() (*Config, error) {
	configFiles := []string{
		".lintbridge.yml",
		".lintbridge.yaml",
		"lintbridge.yml",
	}

	for _, file := range configFiles {
		if _, err := os.Stat(file); err == nil {
			return LoadConfigFromFile(file)
		}
	}

	return NewConfig(), nil
}

func LoadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %s", filename)
	}

	config := NewConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if config.Binary == "" {
		config.Binary = "pylint"
	}

	return config, nil
}
