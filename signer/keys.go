package signer

import (
	"crypto/rand"
	"fmt"
)

// GenerateKey returns a random key as long as alg's hash output.
func GenerateKey(alg Algorithm) ([]byte, error) {
	size := alg.Size()
	if size == 0 {
		return nil, fmt.Errorf("algorithm %q: %w", string(alg), ErrUnsupportedAlgorithm)
	}
	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}
