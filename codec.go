package goJWT

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrEthical07/goJWT/signer"
)

const tokenPartCount = 3

var segmentNames = [tokenPartCount]string{"header", "payload", "signature"}

// Codec encodes and decodes HMAC-signed JWTs. A Codec is immutable once built
// and safe for concurrent use.
type Codec struct {
	config     Config
	serializer Serializer
	parser     *jwt.Parser
	now        func() time.Time
	logger     *slog.Logger
	metrics    *Metrics
}

// Encode signs payload with key under alg and returns the compact token.
func (c *Codec) Encode(payload any, key []byte, alg Algorithm) (string, error) {
	return c.EncodeWithHeaders(nil, payload, key, alg)
}

// EncodeWithHeaders is Encode with extra header fields. Extras are written
// before typ and alg in key order; typ and alg cannot be overridden.
func (c *Codec) EncodeWithHeaders(extra map[string]any, payload any, key []byte, alg Algorithm) (string, error) {
	token, err := c.encode(extra, payload, key, alg)
	if err != nil {
		c.metrics.Inc(MetricEncodeFailure)
		c.logDebug("goJWT: encode failed", err)
		return "", err
	}
	c.metrics.Inc(MetricEncodeSuccess)
	return token, nil
}

func (c *Codec) encode(extra map[string]any, payload any, key []byte, alg Algorithm) (string, error) {
	if !alg.Valid() {
		return "", fmt.Errorf("%w: algorithm %q: %w", ErrConfiguration, string(alg), ErrUnsupportedAlgorithm)
	}
	if len(key) == 0 {
		return "", fmt.Errorf("%w: %w", ErrConfiguration, ErrInvalidKey)
	}

	s := c.serializer
	headerJSON, err := encodeHeader(s, buildHeader(extra, alg))
	if err != nil {
		return "", fmt.Errorf("%w: header: %w", ErrSerialization, err)
	}
	payloadJSON, err := s.Serialize(payload)
	if err != nil {
		return "", fmt.Errorf("%w: payload: %w", ErrSerialization, err)
	}

	signingInput := encodeSegment(headerJSON) + "." + encodeSegment(payloadJSON)

	sig, err := signer.Sign([]byte(signingInput), key, alg)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	token := signingInput + "." + encodeSegment(sig)
	if limit := c.config.MaxTokenLength; limit > 0 && len(token) > limit {
		return "", fmt.Errorf("%w: token of %d bytes exceeds maximum length of %d bytes", ErrConfiguration, len(token), limit)
	}
	return token, nil
}

// Decode returns the payload text of token. With verify set, the signature
// and the exp claim are checked first.
func (c *Codec) Decode(token string, key []byte, verify bool) (string, error) {
	tok, _, err := c.parse(token, key, verify)
	if err != nil {
		return "", err
	}
	return string(tok.Payload), nil
}

// DecodeToMap returns the payload as a generic map.
func (c *Codec) DecodeToMap(token string, key []byte, verify bool) (map[string]any, error) {
	tok, payload, err := c.parse(token, key, verify)
	if err != nil {
		return nil, err
	}
	if claims, ok := payload.(map[string]any); ok {
		return claims, nil
	}

	var claims map[string]any
	if err := c.serializer.Deserialize(tok.Payload, &claims); err != nil {
		return nil, c.resultFailure(fmt.Errorf("%w: payload is not an object: %w", ErrSerialization, err))
	}
	if claims == nil {
		return nil, c.resultFailure(fmt.Errorf("%w: payload is not an object", ErrSerialization))
	}
	return claims, nil
}

// DecodeInto deserializes the payload into out, which must be a non-nil
// pointer. out is left untouched on any error.
func (c *Codec) DecodeInto(token string, key []byte, verify bool, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: decode target must be a non-nil pointer, got %T", ErrSerialization, out)
	}

	tok, _, err := c.parse(token, key, verify)
	if err != nil {
		return err
	}

	fresh := reflect.New(rv.Elem().Type())
	if err := c.serializer.Deserialize(tok.Payload, fresh.Interface()); err != nil {
		return c.resultFailure(fmt.Errorf("%w: payload into %T: %w", ErrSerialization, out, err))
	}
	rv.Elem().Set(fresh.Elem())
	return nil
}

// DecodeAs decodes the payload of token into a new T using c.
func DecodeAs[T any](c *Codec, token string, key []byte, verify bool) (T, error) {
	var out T
	if err := c.DecodeInto(token, key, verify, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Parse runs the decode pipeline and returns the token parts.
func (c *Codec) Parse(token string, key []byte, verify bool) (*Token, error) {
	tok, _, err := c.parse(token, key, verify)
	if err != nil {
		return nil, err
	}
	return tok, nil
}

// MetricsSnapshot returns the codec's metrics. It is empty when metrics are
// disabled.
func (c *Codec) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// Serializer returns the serializer the codec was built with.
func (c *Codec) Serializer() Serializer {
	return c.serializer
}

// parse is the linear decode pipeline: split, base64url-decode, deserialize
// header and payload, then with verify: algorithm lookup, signature check,
// expiration check. The first failure aborts. The decoded payload value is
// returned alongside the token for claim checks.
func (c *Codec) parse(token string, key []byte, verify bool) (*Token, any, error) {
	if c.metrics.LatencyEnabled() {
		start := time.Now()
		defer func() { c.metrics.Observe(MetricDecodeLatency, time.Since(start)) }()
	}

	tok, payload, err := c.runPipeline(token, key, verify)
	if err != nil {
		c.metrics.Inc(decodeFailureMetric(err))
		c.logDebug("goJWT: token rejected", err)
		return nil, nil, err
	}
	c.metrics.Inc(MetricDecodeSuccess)
	return tok, payload, nil
}

func (c *Codec) runPipeline(token string, key []byte, verify bool) (*Token, any, error) {
	if c.config.MaxTokenLength > 0 && len(token) > c.config.MaxTokenLength {
		return nil, nil, fmt.Errorf("%w: token exceeds maximum length of %d bytes", ErrMalformedToken, c.config.MaxTokenLength)
	}

	parts := strings.Split(token, ".")
	if len(parts) != tokenPartCount {
		return nil, nil, fmt.Errorf("%w: token must have %d parts, got %d", ErrMalformedToken, tokenPartCount, len(parts))
	}

	var decoded [tokenPartCount][]byte
	for i, part := range parts {
		if part == "" {
			return nil, nil, fmt.Errorf("%w: empty %s segment", ErrMalformedToken, segmentNames[i])
		}
		b, err := c.parser.DecodeSegment(part)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: decode %s segment: %w", ErrMalformedToken, segmentNames[i], err)
		}
		decoded[i] = b
	}

	var header map[string]any
	if err := c.serializer.Deserialize(decoded[0], &header); err != nil || header == nil {
		return nil, nil, fmt.Errorf("%w: header is not a JSON object", ErrMalformedToken)
	}
	var payload any
	if err := c.serializer.Deserialize(decoded[1], &payload); err != nil {
		return nil, nil, fmt.Errorf("%w: payload is not valid JSON", ErrMalformedToken)
	}

	algName, _ := header[headerAlgorithm].(string)
	tok := &Token{
		Raw:       token,
		Header:    header,
		Payload:   decoded[1],
		Signature: decoded[2],
	}
	if alg := Algorithm(algName); alg.Valid() {
		tok.Algorithm = alg
	}

	if !verify {
		return tok, payload, nil
	}

	if algName == "" {
		return nil, nil, fmt.Errorf("%w: header has no alg", ErrSignatureVerification)
	}
	alg, err := signer.ParseAlgorithm(algName)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrSignatureVerification, err)
	}
	if len(key) == 0 {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfiguration, ErrInvalidKey)
	}

	ok, err := signer.Verify([]byte(parts[0]+"."+parts[1]), decoded[2], key, alg)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if !ok {
		return nil, nil, fmt.Errorf("%w: signature mismatch", ErrSignatureVerification)
	}

	if err := c.checkExpiration(payload); err != nil {
		return nil, nil, err
	}

	tok.Verified = true
	return tok, payload, nil
}

// checkExpiration rejects a token whose exp is not strictly after now minus
// leeway, at one-second resolution. A missing exp never expires unless
// RequireExpiration is set.
func (c *Codec) checkExpiration(payload any) error {
	claims, ok := payload.(map[string]any)
	if !ok {
		if c.config.RequireExpiration {
			return fmt.Errorf("%w: %w: payload is not a claims object", ErrSignatureVerification, ErrInvalidExpiration)
		}
		return nil
	}

	if _, present := claims[ClaimExpiration]; !present {
		if c.config.RequireExpiration {
			return fmt.Errorf("%w: %w: exp is missing", ErrSignatureVerification, ErrInvalidExpiration)
		}
		return nil
	}

	if _, err := jwt.MapClaims(claims).GetExpirationTime(); err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureVerification, ErrInvalidExpiration)
	}
	exp, ok := expirationSeconds(claims[ClaimExpiration])
	if !ok {
		return fmt.Errorf("%w: %w", ErrSignatureVerification, ErrInvalidExpiration)
	}

	// Compared as float64 seconds: exp beyond the int64 range is far future,
	// not a wrapped past instant.
	deadline := math.Floor(exp) + float64(c.config.Leeway/time.Second)
	if deadline <= float64(c.now().UTC().Unix()) {
		return fmt.Errorf("%w: %w at %s", ErrSignatureVerification, ErrTokenExpired, formatExpiration(exp))
	}
	return nil
}

// expirationSeconds reads a NumericDate value. A numeric zero is the epoch.
func expirationSeconds(v any) (float64, bool) {
	switch exp := v.(type) {
	case float64:
		return exp, true
	case json.Number:
		f, err := exp.Float64()
		return f, err == nil
	}
	return 0, false
}

func formatExpiration(exp float64) string {
	if exp < float64(math.MinInt64) {
		return strconv.FormatFloat(exp, 'g', -1, 64)
	}
	return time.Unix(int64(math.Floor(exp)), 0).UTC().Format(time.RFC3339)
}

// resultFailure accounts for a failure in the final deserialization step,
// after parse already counted a successful decode.
func (c *Codec) resultFailure(err error) error {
	c.metrics.Inc(MetricDecodeSerializationFailure)
	c.logDebug("goJWT: payload deserialization failed", err)
	return err
}

func (c *Codec) logDebug(msg string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg,
		slog.String("kind", KindOf(err).String()),
		slog.Any("error", err),
	)
}

func decodeFailureMetric(err error) MetricID {
	switch {
	case errors.Is(err, ErrMalformedToken):
		return MetricDecodeMalformed
	case errors.Is(err, ErrTokenExpired):
		return MetricDecodeExpired
	case errors.Is(err, ErrSignatureVerification) && errors.Is(err, ErrUnsupportedAlgorithm):
		return MetricDecodeUnsupportedAlgorithm
	case errors.Is(err, ErrSignatureVerification):
		return MetricDecodeSignatureInvalid
	case errors.Is(err, ErrSerialization):
		return MetricDecodeSerializationFailure
	default:
		return MetricDecodeConfigurationError
	}
}

var segmentEncoder jwt.Token

func encodeSegment(b []byte) string {
	return segmentEncoder.EncodeSegment(b)
}
