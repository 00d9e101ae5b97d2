package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	ManifestPath string // .hcl or .yaml manifest file or directory
	Root         string // component to instantiate

	Format    string // manifest format: "hcl" or "yaml"
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.Root == "" {
		return nil, errors.New("Root is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
