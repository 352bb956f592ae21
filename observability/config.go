package observability

import (
	"time"

	"github.com/kbukum/gomonad/validation"
)

const (
	defaultServiceName    = "gomonad"
	defaultServiceVersion = "1.0.0"
	defaultEnvironment    = "development"
	defaultSampleRate     = 1.0
	defaultInterval       = 15 * time.Second
)

// Config configures the OpenTelemetry meter and tracer providers.
// An empty Endpoint disables export.
type Config struct {
	// ServiceName is the name reported in the service.name resource attribute.
	ServiceName string `mapstructure:"service_name"`
	// ServiceVersion is the version reported in the service.version resource attribute.
	ServiceVersion string `mapstructure:"service_version"`
	// Environment is the deployment environment (dev, staging, prod).
	Environment string `mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	// Insecure allows insecure connections (for development).
	Insecure bool `mapstructure:"insecure"`
	// SampleRate is the trace sampling rate (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	// Interval is the metric export interval.
	Interval time.Duration `mapstructure:"interval" validate:"gte=0"`
}

// DefaultConfig returns sensible defaults for development.
func DefaultConfig(serviceName string) Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: defaultServiceVersion,
		Environment:    defaultEnvironment,
		Endpoint:       "localhost:4318",
		Insecure:       true,
		SampleRate:     defaultSampleRate,
		Interval:       defaultInterval,
	}
}

// ApplyDefaults fills in zero-valued fields. Endpoint is left alone so that
// export stays disabled unless configured.
func (c *Config) ApplyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = defaultServiceName
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = defaultServiceVersion
	}
	if c.Environment == "" {
		c.Environment = defaultEnvironment
	}
	if c.Interval == 0 {
		c.Interval = defaultInterval
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// Enabled reports whether an export endpoint is configured.
func (c *Config) Enabled() bool {
	return c.Endpoint != ""
}
