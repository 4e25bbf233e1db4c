package goJWT

import (
	"errors"
	"time"
)

const maxLeeway = 2 * time.Minute

// Config controls decoding strictness and metrics. The zero value is usable.
type Config struct {
	// Leeway tolerates clock skew when checking exp. Limited to 2 minutes.
	Leeway time.Duration
	// MaxTokenLength bounds token size in both directions: Encode refuses to
	// issue a longer token and Decode rejects one as malformed before any
	// decoding. 0 means unbounded.
	MaxTokenLength int
	// AllowPaddedSegments accepts segments carrying "=" padding.
	AllowPaddedSegments bool
	// RequireExpiration makes a verified decode fail when exp is absent.
	RequireExpiration bool

	Metrics MetricsConfig
}

// MetricsConfig enables the in-process counters read by the exporters.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DefaultConfig returns the configuration used by the package-level functions.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Leeway < 0 || c.Leeway > maxLeeway {
		return errors.New("invalid leeway configuration")
	}
	if c.MaxTokenLength < 0 {
		return errors.New("invalid MaxTokenLength configuration")
	}
	if c.Metrics.EnableLatencyHistograms && !c.Metrics.Enabled {
		return errors.New("latency histograms require metrics to be enabled")
	}
	return nil
}
