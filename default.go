package goJWT

import (
	"sync/atomic"
	"time"
)

type defaultCodecState struct {
	box   *serializerBox
	codec *Codec
}

var defaultCodec atomic.Pointer[defaultCodecState]

// Default returns the codec behind the package-level functions: DefaultConfig
// with the process-wide serializer. It follows SetSerializer.
func Default() *Codec {
	box := activeSerializer.Load()
	if st := defaultCodec.Load(); st != nil && st.box == box {
		return st.codec
	}
	c := newCodec(defaultConfig(), box.s, time.Now, nil)
	defaultCodec.Store(&defaultCodecState{box: box, codec: c})
	return c
}

// Encode signs payload with the process-wide serializer. See Codec.Encode.
func Encode(payload any, key []byte, alg Algorithm) (string, error) {
	return Default().Encode(payload, key, alg)
}

// EncodeWithHeaders is Encode with extra header fields. See Codec.EncodeWithHeaders.
func EncodeWithHeaders(extra map[string]any, payload any, key []byte, alg Algorithm) (string, error) {
	return Default().EncodeWithHeaders(extra, payload, key, alg)
}

// Decode returns the payload text of token. See Codec.Decode.
func Decode(token string, key []byte, verify bool) (string, error) {
	return Default().Decode(token, key, verify)
}

// DecodeToMap returns the payload as a generic map. See Codec.DecodeToMap.
func DecodeToMap(token string, key []byte, verify bool) (map[string]any, error) {
	return Default().DecodeToMap(token, key, verify)
}

// DecodeInto deserializes the payload into out. See Codec.DecodeInto.
func DecodeInto(token string, key []byte, verify bool, out any) error {
	return Default().DecodeInto(token, key, verify, out)
}

// DecodeTo decodes the payload into a new T with the process-wide serializer.
func DecodeTo[T any](token string, key []byte, verify bool) (T, error) {
	return DecodeAs[T](Default(), token, key, verify)
}

// NewClaims returns claims with a fresh jti, iat and, for ttl > 0, exp.
func NewClaims(ttl time.Duration) map[string]any {
	return Default().NewClaims(ttl)
}
