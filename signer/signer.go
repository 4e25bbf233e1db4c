package signer

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Algorithm names an HMAC signing algorithm. The value is the exact string
// carried in the JWT "alg" header.
type Algorithm string

const (
	// HS256 is HMAC with SHA-256.
	HS256 Algorithm = "HS256"
	// HS384 is HMAC with SHA-384.
	HS384 Algorithm = "HS384"
	// HS512 is HMAC with SHA-512.
	HS512 Algorithm = "HS512"
)

var (
	// ErrUnsupportedAlgorithm is returned for any algorithm outside the closed set.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	// ErrInvalidKey is returned when the key cannot be used with HMAC.
	ErrInvalidKey = errors.New("invalid signing key")
)

// Algorithms returns the supported algorithms in ascending hash size.
func Algorithms() []Algorithm {
	return []Algorithm{HS256, HS384, HS512}
}

// ParseAlgorithm maps a header "alg" value onto the closed algorithm set.
// Matching is exact; "hs256" is not HS256.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(name)
	if !alg.Valid() {
		return "", fmt.Errorf("algorithm %q: %w", name, ErrUnsupportedAlgorithm)
	}
	return alg, nil
}

// Valid reports whether a is one of HS256, HS384 or HS512.
func (a Algorithm) Valid() bool {
	_, ok := methodFor(a)
	return ok
}

// Size returns the signature length in bytes, or 0 for an unsupported algorithm.
func (a Algorithm) Size() int {
	m, ok := methodFor(a)
	if !ok {
		return 0
	}
	return m.Hash.Size()
}

func (a Algorithm) String() string {
	return string(a)
}

// Sign returns the HMAC of message under key using the hash selected by alg.
func Sign(message, key []byte, alg Algorithm) ([]byte, error) {
	m, err := method(alg)
	if err != nil {
		return nil, err
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%s requires a non-empty key: %w", alg, ErrInvalidKey)
	}

	sig, err := m.Sign(string(message), key)
	if err != nil {
		return nil, fmt.Errorf("sign %s: %w", alg, err)
	}
	return sig, nil
}

// Verify recomputes the HMAC of message and compares it to signature in
// constant time.
//
// A mismatch, including a length mismatch, is reported as (false, nil). An
// error is returned only when the comparison could not be attempted: an
// unsupported algorithm or an unusable key.
func Verify(message, signature, key []byte, alg Algorithm) (bool, error) {
	m, err := method(alg)
	if err != nil {
		return false, err
	}
	if len(key) == 0 {
		return false, fmt.Errorf("%s requires a non-empty key: %w", alg, ErrInvalidKey)
	}

	err = m.Verify(string(message), signature, key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, jwt.ErrSignatureInvalid):
		return false, nil
	default:
		return false, fmt.Errorf("verify %s: %w", alg, err)
	}
}

func method(alg Algorithm) (*jwt.SigningMethodHMAC, error) {
	m, ok := methodFor(alg)
	if !ok {
		return nil, fmt.Errorf("algorithm %q: %w", string(alg), ErrUnsupportedAlgorithm)
	}
	return m, nil
}

func methodFor(alg Algorithm) (*jwt.SigningMethodHMAC, bool) {
	switch alg {
	case HS256:
		return jwt.SigningMethodHS256, true
	case HS384:
		return jwt.SigningMethodHS384, true
	case HS512:
		return jwt.SigningMethodHS512, true
	default:
		return nil, false
	}
}
