package app

import "errors"

// Views selectable for a run.
const (
	ViewOrder    = "order"
	ViewGroups   = "groups"
	ViewCritical = "critical"
)

// Output encodings.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PlanPath string // plan file or directory of plan files

	View      string
	Output    string
	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.PlanPath == "" {
		return nil, errors.New("PlanPath is a required configuration field and cannot be empty")
	}

	if cfg.View == "" {
		cfg.View = ViewOrder
	}
	if cfg.Output == "" {
		cfg.Output = OutputText
	}

	return &cfg, nil
}
