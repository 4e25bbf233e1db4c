package goJWT

import (
	"encoding/json"
	"sync/atomic"

	gojson "github.com/goccy/go-json"
)

// Serializer converts values to and from their canonical JSON text.
//
// Implementations must be deterministic: the same value must always produce
// the same bytes, because those bytes are what gets signed.
type Serializer interface {
	Serialize(v any) ([]byte, error)
	Deserialize(data []byte, v any) error
}

// StdJSON is the default Serializer, backed by encoding/json.
type StdJSON struct{}

func (StdJSON) Serialize(v any) ([]byte, error) { return json.Marshal(v) }

func (StdJSON) Deserialize(data []byte, v any) error { return json.Unmarshal(data, v) }

// GoJSON is a Serializer backed by github.com/goccy/go-json. Its output is
// byte-compatible with StdJSON for structs, maps and scalars.
type GoJSON struct{}

func (GoJSON) Serialize(v any) ([]byte, error) { return gojson.Marshal(v) }

func (GoJSON) Deserialize(data []byte, v any) error { return gojson.Unmarshal(data, v) }

type serializerBox struct {
	s Serializer
}

var activeSerializer atomic.Pointer[serializerBox]

func init() {
	activeSerializer.Store(&serializerBox{s: StdJSON{}})
}

// SetSerializer replaces the process-wide serializer used by the package-level
// functions. Builders without WithSerializer capture it at Build time. A nil s
// restores StdJSON.
//
// Set it once during startup. Tokens encoded under one serializer may not
// verify under another if the two format JSON differently.
func SetSerializer(s Serializer) {
	if s == nil {
		s = StdJSON{}
	}
	activeSerializer.Store(&serializerBox{s: s})
}

// ActiveSerializer returns the process-wide serializer.
func ActiveSerializer() Serializer {
	return activeSerializer.Load().s
}
