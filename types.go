package goJWT

import (
	"strings"

	"github.com/MrEthical07/goJWT/signer"
)

// Algorithm is the HMAC algorithm carried in the "alg" header.
type Algorithm = signer.Algorithm

const (
	HS256 = signer.HS256
	HS384 = signer.HS384
	HS512 = signer.HS512
)

// Algorithms lists the supported algorithms.
func Algorithms() []Algorithm {
	return signer.Algorithms()
}

// GenerateKey returns a random HMAC key sized to alg's hash output.
func GenerateKey(alg Algorithm) ([]byte, error) {
	return signer.GenerateKey(alg)
}

// ParseAlgorithm resolves a header or flag value such as "HS256". Matching is
// exact.
func ParseAlgorithm(name string) (Algorithm, error) {
	return signer.ParseAlgorithm(name)
}

// Token is a parsed token. It is returned by Codec.Parse and never
// partially populated: on error Parse returns nil.
type Token struct {
	// Raw is the token string as received.
	Raw string
	// Header is the decoded header object.
	Header map[string]any
	// Algorithm is the header "alg" value when it names a supported
	// algorithm, otherwise empty.
	Algorithm Algorithm
	// Payload is the decoded payload text.
	Payload []byte
	// Signature is the decoded signature segment.
	Signature []byte
	// Verified is true when the signature and exp claim were checked.
	Verified bool
}

// SigningInput returns the exact bytes the signature covers.
func (t *Token) SigningInput() string {
	if t == nil {
		return ""
	}
	i := strings.LastIndexByte(t.Raw, '.')
	if i < 0 {
		return ""
	}
	return t.Raw[:i]
}
