package goJWT

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Builder assembles an immutable Codec. A Builder can be built once.
type Builder struct {
	config     Config
	serializer Serializer
	logger     *slog.Logger
	now        func() time.Time

	built bool
}

// New returns a Builder seeded with DefaultConfig.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithSerializer pins the codec to s. Without it, Build captures the
// process-wide serializer current at build time.
func (b *Builder) WithSerializer(s Serializer) *Builder {
	b.serializer = s
	return b
}

// WithLogger enables debug logging of rejected tokens and failed encodes.
// Keys and token contents are never logged.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// WithClock overrides the time source for exp checks and NewClaims.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

func (b *Builder) WithLeeway(d time.Duration) *Builder {
	b.config.Leeway = d
	return b
}

func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration and returns the Codec. Errors wrap
// ErrConfiguration.
func (b *Builder) Build() (*Codec, error) {
	if b.built {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, ErrBuilderUsed)
	}

	cfg := b.config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	s := b.serializer
	if s == nil {
		s = ActiveSerializer()
	}
	now := b.now
	if now == nil {
		now = time.Now
	}

	b.built = true

	return newCodec(cfg, s, now, b.logger), nil
}

func newCodec(cfg Config, s Serializer, now func() time.Time, logger *slog.Logger) *Codec {
	return &Codec{
		config:     cfg,
		serializer: s,
		parser:     newSegmentParser(cfg),
		now:        now,
		logger:     logger,
		metrics:    NewMetrics(cfg.Metrics),
	}
}

// newSegmentParser returns the golang-jwt parser used only for its base64url
// segment decoding. Decoding is always strict: a segment whose unused
// trailing bits are set is malformed, so every accepted segment has exactly
// one unpadded spelling.
func newSegmentParser(cfg Config) *jwt.Parser {
	opts := []jwt.ParserOption{jwt.WithStrictDecoding()}
	if cfg.AllowPaddedSegments {
		opts = append(opts, jwt.WithPaddingAllowed())
	}
	return jwt.NewParser(opts...)
}
