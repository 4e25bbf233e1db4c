package goJWT

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "nil", err: nil, want: KindNone},
		{name: "configuration", err: fmt.Errorf("%w: %w", ErrConfiguration, ErrInvalidKey), want: KindConfiguration},
		{name: "malformed", err: fmt.Errorf("%w: bad segment", ErrMalformedToken), want: KindMalformedToken},
		{name: "expired", err: fmt.Errorf("%w: %w", ErrSignatureVerification, ErrTokenExpired), want: KindSignatureVerification},
		{name: "unsupported header alg", err: fmt.Errorf("%w: %w", ErrSignatureVerification, ErrUnsupportedAlgorithm), want: KindSignatureVerification},
		{name: "serialization", err: fmt.Errorf("%w: boom", ErrSerialization), want: KindSerialization},
		{name: "unknown", err: errors.New("other"), want: KindUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "configuration", KindConfiguration.String())
	assert.Equal(t, "malformed_token", KindMalformedToken.String())
	assert.Equal(t, "signature_verification", KindSignatureVerification.String())
	assert.Equal(t, "serialization", KindSerialization.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unknown", ErrorKind(200).String())
}
