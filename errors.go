package goJWT

import (
	"errors"

	"github.com/MrEthical07/goJWT/signer"
)

// Error classes. Every error returned by Encode and the Decode family wraps
// exactly one of these, so callers can branch with errors.Is or KindOf.
var (
	// ErrConfiguration reports an unusable algorithm, key or Config.
	ErrConfiguration = errors.New("configuration error")
	// ErrMalformedToken reports a structurally invalid token.
	ErrMalformedToken = errors.New("malformed token")
	// ErrSignatureVerification reports a token that failed signature or expiration checks.
	ErrSignatureVerification = errors.New("signature verification failed")
	// ErrSerialization reports a payload the serializer could not convert.
	ErrSerialization = errors.New("serialization error")
)

// Detail errors, always wrapped together with one of the classes above.
var (
	ErrUnsupportedAlgorithm = signer.ErrUnsupportedAlgorithm
	ErrInvalidKey           = signer.ErrInvalidKey
	// ErrTokenExpired is wrapped with ErrSignatureVerification when exp is not in the future.
	ErrTokenExpired = errors.New("token has expired")
	// ErrInvalidExpiration is wrapped with ErrSignatureVerification when exp is not numeric.
	ErrInvalidExpiration = errors.New("invalid exp claim")
	// ErrBuilderUsed is returned when Build is called twice on the same Builder.
	ErrBuilderUsed = errors.New("builder already used")
)

// ErrorKind discriminates the error classes.
type ErrorKind uint8

const (
	KindNone ErrorKind = iota
	KindConfiguration
	KindMalformedToken
	KindSignatureVerification
	KindSerialization
	// KindUnknown is any non-nil error that wraps none of the class sentinels.
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConfiguration:
		return "configuration"
	case KindMalformedToken:
		return "malformed_token"
	case KindSignatureVerification:
		return "signature_verification"
	case KindSerialization:
		return "serialization"
	default:
		return "unknown"
	}
}

// KindOf classifies err. A token whose header names an unsupported algorithm
// is a verification failure even though it also matches ErrUnsupportedAlgorithm.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMalformedToken):
		return KindMalformedToken
	case errors.Is(err, ErrSignatureVerification):
		return KindSignatureVerification
	case errors.Is(err, ErrSerialization):
		return KindSerialization
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	default:
		return KindUnknown
	}
}
