package goJWT

import (
	"fmt"
	"time"
)

// SecurityReport summarizes the verification posture of a Codec.
type SecurityReport struct {
	Algorithms          []Algorithm
	Serializer          string
	Leeway              time.Duration
	MaxTokenLength      int
	RequireExpiration   bool
	AllowPaddedSegments bool
	MetricsEnabled      bool
	LatencyHistograms   bool
	Lint                LintResult
}

// SecurityReport describes how c verifies tokens. A nil Codec reports the zero value.
func (c *Codec) SecurityReport() SecurityReport {
	if c == nil {
		return SecurityReport{}
	}

	return SecurityReport{
		Algorithms:          Algorithms(),
		Serializer:          serializerName(c.serializer),
		Leeway:              c.config.Leeway,
		MaxTokenLength:      c.config.MaxTokenLength,
		RequireExpiration:   c.config.RequireExpiration,
		AllowPaddedSegments: c.config.AllowPaddedSegments,
		MetricsEnabled:      c.metrics.Enabled(),
		LatencyHistograms:   c.metrics.LatencyEnabled(),
		Lint:                c.config.Lint(),
	}
}

func serializerName(s Serializer) string {
	switch s.(type) {
	case StdJSON, *StdJSON:
		return "encoding/json"
	case GoJSON, *GoJSON:
		return "goccy/go-json"
	default:
		return fmt.Sprintf("%T", s)
	}
}
