// Package config loads the extractor configuration from an optional YAML
// file with environment-variable overrides. Precedence: environment, then
// file, then defaults. The layout heuristics and the sheet row cap are
// deliberately not configurable; they are part of the extraction contract.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix namespaces the environment variables, e.g.
// OUTLETPL_LOGGING_LEVEL, OUTLETPL_PROCESSING_INPUT_DIR.
const envPrefix = "OUTLETPL"

// Config is the complete extractor configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Processing ProcessingConfig `yaml:"processing" envconfig:"PROCESSING"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ProcessingConfig controls the batch run.
type ProcessingConfig struct {
	InputDir  string `yaml:"input_dir" envconfig:"INPUT_DIR"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	Workers   int    `yaml:"workers" envconfig:"WORKERS"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/extractor.log",
		},
		Processing: ProcessingConfig{
			InputDir:  "data/inbox",
			OutputDir: "data/clean",
			Workers:   4,
		},
	}
}

// Load reads configuration from the given YAML file (skipped when the path
// is empty or the file does not exist), applies environment overrides, and
// validates the result. File values override defaults; environment
// variables override both.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			data, err := os.ReadFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Output) {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output: %q", c.Logging.Output)
	}
	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("logging file_path required for output %q", c.Logging.Output)
	}

	if c.Processing.Workers < 1 {
		return fmt.Errorf("processing workers must be at least 1, got %d", c.Processing.Workers)
	}
	return nil
}
