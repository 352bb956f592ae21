package config

import (
	"fmt"
	"slices"

	"github.com/kbukum/gomonad/logger"
	"github.com/kbukum/gomonad/observability"
)

const (
	defaultName        = "gomonad"
	defaultEnvironment = "development"
)

var validEnvironments = []string{"development", "staging", "production", "test"}

// Settings is the process-level configuration for programs built on gomonad.
// Projects extend it by embedding it in their own config structs.
//
// Example:
//
//	type MyConfig struct {
//	    config.Settings `yaml:",inline" mapstructure:",squash"`
//	    BatchSize int `yaml:"batch_size" mapstructure:"batch_size"`
//	}
type Settings struct {
	Name        string               `yaml:"name" mapstructure:"name"`
	Environment string               `yaml:"environment" mapstructure:"environment"`
	Logging     logger.Config        `yaml:"logging" mapstructure:"logging"`
	Telemetry   observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// GetSettings returns the base Settings. When embedded, the method is
// promoted so the embedding struct satisfies Provider.
func (s *Settings) GetSettings() *Settings {
	return s
}

// ApplyDefaults applies default values to the settings and their sections.
func (s *Settings) ApplyDefaults() {
	if s.Name == "" {
		s.Name = defaultName
	}
	if s.Environment == "" {
		s.Environment = defaultEnvironment
	}
	// Propagate identity into telemetry so resources carry the right tags.
	if s.Telemetry.ServiceName == "" {
		s.Telemetry.ServiceName = s.Name
	}
	if s.Telemetry.Environment == "" {
		s.Telemetry.Environment = s.Environment
	}
	s.Logging.ApplyDefaults()
	s.Telemetry.ApplyDefaults()
}

// Validate validates the settings and their sections.
func (s *Settings) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	if !slices.Contains(validEnvironments, s.Environment) {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvironments, s.Environment)
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := s.Telemetry.Validate(); err != nil {
		return fmt.Errorf("config.telemetry: %w", err)
	}
	return nil
}

// Provider is satisfied by Settings and by any struct embedding it.
type Provider interface {
	GetSettings() *Settings
	ApplyDefaults()
	Validate() error
}
