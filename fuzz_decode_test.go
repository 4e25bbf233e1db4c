package goJWT

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FuzzDecode exercises the decode pipeline with arbitrary token strings.
// Goal: no panics; every rejection carries an error class.
func FuzzDecode(f *testing.F) {
	c, err := New().WithSerializer(StdJSON{}).Build()
	require.NoError(f, err)

	f.Add(bobToken, true)
	f.Add(bobExtraHeaderToken, false)
	f.Add("", true)
	f.Add("not.a.jwt", true)
	f.Add("eyJhbGciOiJub25lIn0.eyJ1aWQiOiJ0ZXN0In0.", true)
	f.Add("eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJleHAiOiJzb29uIn0.c2ln", false)
	f.Add("a.b.c.d", true)

	f.Fuzz(func(t *testing.T, input string, verify bool) {
		tok, err := c.Parse(input, keyABC, verify)
		if err != nil {
			assert.Nil(t, tok, "Parse returned a token alongside an error")
			assert.NotEqual(t, KindUnknown, KindOf(err), "unclassified error: %v", err)
			return
		}
		require.NotNil(t, tok)
		if verify {
			assert.True(t, tok.Verified, "verified parse did not mark the token")
		}
		_, err = c.Decode(input, keyABC, verify)
		assert.NoError(t, err, "Decode disagrees with Parse")
	})
}

// FuzzEncodeRoundTrip checks that every encodable string payload decodes back.
func FuzzEncodeRoundTrip(f *testing.F) {
	c, err := New().WithSerializer(GoJSON{}).Build()
	require.NoError(f, err)

	f.Add("Bob", []byte("ABC"))
	f.Add("", []byte{0})
	f.Add("é <>&", []byte("key with spaces"))

	f.Fuzz(func(t *testing.T, value string, key []byte) {
		// Invalid UTF-8 is rewritten by the serializer.
		if !utf8.ValidString(value) {
			t.Skip()
		}
		token, err := c.Encode(map[string]any{"v": value}, key, HS384)
		if len(key) == 0 {
			require.ErrorIs(t, err, ErrInvalidKey)
			return
		}
		require.NoError(t, err)

		m, err := c.DecodeToMap(token, key, true)
		require.NoError(t, err)
		assert.Equal(t, value, m["v"])
	})
}
