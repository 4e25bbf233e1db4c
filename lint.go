package goJWT

import (
	"fmt"
	"strings"
	"time"
)

// LintSeverity ranks a lint finding.
type LintSeverity uint8

const (
	LintInfo LintSeverity = iota
	LintWarn
	LintHigh
)

func (s LintSeverity) String() string {
	switch s {
	case LintInfo:
		return "INFO"
	case LintWarn:
		return "WARN"
	case LintHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// LintWarning is one advisory finding. Codes are stable identifiers.
type LintWarning struct {
	Code     string
	Severity LintSeverity
	Message  string
}

// LintResult is the ordered list of findings.
type LintResult []LintWarning

const (
	lintLeewayLarge         = 60 * time.Second
	lintMaxTokenLengthLarge = 64 * 1024
)

// Lint reports settings that are valid but weaken verification. It never
// fails; use Validate for hard errors.
func (c Config) Lint() LintResult {
	var ws LintResult

	if c.Leeway > lintLeewayLarge {
		ws = append(ws, LintWarning{
			Code:     "leeway_large",
			Severity: LintWarn,
			Message:  fmt.Sprintf("leeway %s accepts tokens up to that long after exp", c.Leeway),
		})
	}
	if c.MaxTokenLength == 0 {
		ws = append(ws, LintWarning{
			Code:     "max_token_length_unbounded",
			Severity: LintInfo,
			Message:  "tokens of any length reach the base64 and JSON decoders",
		})
	}
	if c.MaxTokenLength > lintMaxTokenLengthLarge {
		ws = append(ws, LintWarning{
			Code:     "max_token_length_large",
			Severity: LintWarn,
			Message:  fmt.Sprintf("MaxTokenLength %d lets oversized tokens reach the JSON decoder", c.MaxTokenLength),
		})
	}
	if !c.RequireExpiration {
		ws = append(ws, LintWarning{
			Code:     "expiration_optional",
			Severity: LintInfo,
			Message:  "tokens without exp never expire",
		})
	}
	if c.AllowPaddedSegments {
		ws = append(ws, LintWarning{
			Code:     "padding_allowed",
			Severity: LintInfo,
			Message:  "padded segments are accepted, so one token has several valid spellings",
		})
	}

	return ws
}

// LintKey reports an HMAC key shorter than the algorithm's output, the
// minimum RFC 7518 section 3.2 requires.
func LintKey(key []byte, alg Algorithm) LintResult {
	if !alg.Valid() {
		return LintResult{{
			Code:     "algorithm_unsupported",
			Severity: LintHigh,
			Message:  fmt.Sprintf("algorithm %q is not HS256, HS384 or HS512", string(alg)),
		}}
	}
	if len(key) == 0 {
		return LintResult{{
			Code:     "key_empty",
			Severity: LintHigh,
			Message:  "key is empty",
		}}
	}
	if len(key) < alg.Size() {
		return LintResult{{
			Code:     "key_short",
			Severity: LintHigh,
			Message:  fmt.Sprintf("%s key is %d bytes, want at least %d", alg, len(key), alg.Size()),
		}}
	}
	return nil
}

// Codes returns the warning codes in order.
func (r LintResult) Codes() []string {
	out := make([]string, len(r))
	for i, w := range r {
		out[i] = w.Code
	}
	return out
}

// BySeverity returns the warnings at or above min.
func (r LintResult) BySeverity(min LintSeverity) LintResult {
	var out LintResult
	for _, w := range r {
		if w.Severity >= min {
			out = append(out, w)
		}
	}
	return out
}

// AsError joins the warnings at or above min into an ErrConfiguration, or
// returns nil when there are none.
func (r LintResult) AsError(min LintSeverity) error {
	hits := r.BySeverity(min)
	if len(hits) == 0 {
		return nil
	}
	parts := make([]string, len(hits))
	for i, w := range hits {
		parts[i] = fmt.Sprintf("%s[%s]: %s", w.Code, w.Severity, w.Message)
	}
	return fmt.Errorf("%w: lint: %s", ErrConfiguration, strings.Join(parts, "; "))
}
