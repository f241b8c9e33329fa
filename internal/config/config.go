// Package config loads listinglint configuration from flags, config files
// and the environment via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the listinglint configuration.
type Config struct {
	Root     string   `mapstructure:"root"`
	Exclude  []string `mapstructure:"exclude"`
	Format   string   `mapstructure:"format"`
	Output   string   `mapstructure:"output"`
	FailOn   string   `mapstructure:"failOn"`
	MinScore int      `mapstructure:"minScore"`
	Quiet    bool     `mapstructure:"quiet"`
	Verbose  bool     `mapstructure:"verbose"`
}

// LoadConfig loads configuration from various sources.
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("format", "console")
	viper.SetDefault("failOn", "error")
	viper.SetDefault("minScore", 0)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)

	configPaths := []string{".listinglintrc.json", ".listinglintrc.yaml", ".listinglintrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("LISTINGLINT")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.FailOn != "error" && config.FailOn != "warning" {
		return fmt.Errorf("invalid fail-on level: %s. Must be 'error' or 'warning'", config.FailOn)
	}

	if config.MinScore < 0 || config.MinScore > 100 {
		return fmt.Errorf("min-score must be between 0 and 100")
	}

	return nil
}
