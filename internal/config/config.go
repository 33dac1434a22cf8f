package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration. Every default reproduces
// the fixed behavior of the reserved domain list generator, so running
// without a config file yields the canonical output.
type Config struct {
	// Environment specifies the current running environment (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Input describes the ranked domain list that is consumed
	Input struct {
		// Path is the comma-separated ranked domain file, header row first
		Path string `env:"INPUT_PATH" env-default:"top10milliondomains.csv" yaml:"path"`
	} `yaml:"input"`

	// Output describes the generated reserved domain list
	Output struct {
		// Path is where the "Rank","Domain" file is written
		Path string `env:"OUTPUT_PATH" env-default:"10k-reserved-domains.csv" yaml:"path"`
		// ExpectedSHA256 is the advisory checksum announced once the file is written
		ExpectedSHA256 string `env:"OUTPUT_EXPECTED_SHA256" env-default:"05d7257769904da71a864601b37e0e5522b7ac45e26259191201f71c236ac5ae" yaml:"expectedSHA256"` //nolint: lll
	} `yaml:"output"`

	// Limit is the number of distinct canonical domains after which input stops being consumed
	Limit int `env:"LIMIT" env-default:"10000" yaml:"limit"`

	// Rules points at the exclusion rule tables
	Rules struct {
		// Path is an optional YAML rule file; empty selects the embedded tables
		Path string `env:"RULES_PATH" env-default:"" yaml:"path"`
	} `yaml:"rules"`

	// Metrics controls the pipeline counters export
	Metrics struct {
		// TextfilePath, when set, receives the counters in Prometheus text format at the end of a run
		TextfilePath string `env:"METRICS_TEXTFILE_PATH" env-default:"" yaml:"textfilePath"`
	} `yaml:"metrics"`
}

// Load receives the path for the yaml config file and returns a filled Config.
// A missing file is not an error: values then come from the environment and
// the defaults.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(configPath, &cfg)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if cfg.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", cfg.Limit)
	}
	if cfg.Input.Path == "" || cfg.Output.Path == "" {
		return nil, errors.New("input and output paths must not be empty")
	}

	return &cfg, nil
}
