package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			key, err := GenerateKey(alg)
			require.NoError(t, err)
			assert.Len(t, key, alg.Size())

			other, err := GenerateKey(alg)
			require.NoError(t, err)
			assert.NotEqual(t, key, other)

			sig, err := Sign([]byte("msg"), key, alg)
			require.NoError(t, err)
			ok, err := Verify([]byte("msg"), sig, key, alg)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestGenerateKeyUnsupported(t *testing.T) {
	_, err := GenerateKey(Algorithm("HS1"))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}
