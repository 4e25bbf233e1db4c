package goJWT

import (
	"bytes"
	"sort"
)

const (
	headerType      = "typ"
	headerAlgorithm = "alg"
	typeJWT         = "JWT"
)

type headerEntry struct {
	key   string
	value any
}

// buildHeader lays out the header fields: caller extras first in key order,
// then typ, then alg. A reserved key supplied as an extra keeps its position
// but takes the reserved value.
func buildHeader(extra map[string]any, alg Algorithm) []headerEntry {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]headerEntry, 0, len(keys)+2)
	for _, k := range keys {
		entries = append(entries, headerEntry{key: k, value: extra[k]})
	}
	entries = setHeaderEntry(entries, headerType, typeJWT)
	entries = setHeaderEntry(entries, headerAlgorithm, string(alg))
	return entries
}

func setHeaderEntry(entries []headerEntry, key string, value any) []headerEntry {
	for i := range entries {
		if entries[i].key == key {
			entries[i].value = value
			return entries
		}
	}
	return append(entries, headerEntry{key: key, value: value})
}

// encodeHeader writes the entries as a JSON object in order. Keys and values
// go through s so the header is formatted by the same engine as the payload.
func encodeHeader(s Serializer, entries []headerEntry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := s.Serialize(e.key)
		if err != nil {
			return nil, err
		}
		v, err := s.Serialize(e.value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
