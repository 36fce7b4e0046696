package qgraph

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// objEntry is one key/value pair of a JSON object, in document order.
type objEntry struct {
	Key string
	Val json.RawMessage
}

// parseObject reads a JSON object from data preserving key order.
// encoding/json's map decoding would randomize key order, which breaks
// the boundary-ordering contract of wire_vertices, so objects are walked
// token by token instead.
func parseObject(data []byte) ([]objEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var entries []objEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		entries = append(entries, objEntry{Key: key, Val: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

// jsonObject builds a JSON object whose keys marshal in insertion order.
type jsonObject struct {
	entries []objEntry
}

// Set marshals v and appends it under key.
func (o *jsonObject) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	o.SetRaw(key, raw)
	return nil
}

// SetRaw appends a pre-serialized value under key.
func (o *jsonObject) SetRaw(key string, raw json.RawMessage) {
	o.entries = append(o.entries, objEntry{Key: key, Val: raw})
}

// Len returns the number of entries.
func (o *jsonObject) Len() int { return len(o.entries) }

// MarshalJSON emits the object with keys in insertion order.
func (o *jsonObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(e.Val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
