package ratelimit

import "fmt"

// Default token bucket parameters. Wikipedia asks clients to stay at a
// polite request rate; these match the defaults of the harvesting
// pipeline and can be overridden per limiter.
const (
	DefaultRate  = 50.0
	DefaultBurst = 10
)

// Config holds the construction-time parameters for a Limiter.
type Config struct {
	// Rate is the sustained refill rate in tokens per second.
	Rate float64

	// Burst is the bucket capacity: the maximum number of requests that
	// can be admitted back to back.
	Burst int

	// Metrics receives acquisition observations. Nil disables recording.
	Metrics Metrics
}

// ApplyDefaults fills zero values with the package defaults.
func (c *Config) ApplyDefaults() {
	if c.Rate == 0 {
		c.Rate = DefaultRate
	}
	if c.Burst == 0 {
		c.Burst = DefaultBurst
	}
}

// Validate checks the configuration for values the limiter cannot run
// with.
func (c *Config) Validate() error {
	if c.Rate <= 0 {
		return fmt.Errorf("Rate must be positive, got %g", c.Rate)
	}
	if c.Burst <= 0 {
		return fmt.Errorf("Burst must be positive, got %d", c.Burst)
	}
	return nil
}
