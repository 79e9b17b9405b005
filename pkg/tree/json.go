package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Parse decodes JSON into a Tree, preserving object key order.
// Strings become leaves, objects become nodes and every other value is kept
// as raw JSON. Duplicate keys keep their first position and last value.
func Parse(data []byte) (*Tree, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	if !json.Valid(data) {
		// Let the standard decoder produce a positioned error message.
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("invalid JSON")
	}
	return parseValue(data)
}

func parseValue(data []byte) (*Tree, error) {
	data = bytes.TrimSpace(data)
	switch data[0] {
	case '{':
		return parseObject(data)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return Leaf(s), nil
	default:
		var compact bytes.Buffer
		if err := json.Compact(&compact, data); err != nil {
			return nil, err
		}
		return Raw(compact.Bytes()), nil
	}
}

func parseObject(data []byte) (*Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	node := NewNode()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		child, err := parseValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		node.Put(key, child)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tree) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

// MarshalJSON implements json.Marshaler. Keys are written in tree order.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	writeJSON(&buf, t, "", "")
	return buf.Bytes(), nil
}

// Encode renders t the way locale files are persisted: two-space indentation,
// no HTML escaping and a trailing newline.
func Encode(t *Tree) []byte {
	var buf bytes.Buffer
	writeJSON(&buf, t, "", "  ")
	buf.WriteByte('\n')
	return buf.Bytes()
}

func writeJSON(buf *bytes.Buffer, t *Tree, prefix, indent string) {
	switch {
	case t == nil:
		buf.WriteString("null")
	case t.kind == KindLeaf:
		writeString(buf, t.value)
	case t.kind == KindRaw:
		if indent == "" || json.Indent(buf, t.raw, prefix, indent) != nil {
			buf.Write(t.raw)
		}
	case len(t.keys) == 0:
		buf.WriteString("{}")
	default:
		inner := prefix + indent
		buf.WriteByte('{')
		for i, k := range t.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if indent != "" {
				buf.WriteByte('\n')
				buf.WriteString(inner)
			}
			writeString(buf, k)
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			writeJSON(buf, t.children[k], inner, indent)
		}
		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(prefix)
		}
		buf.WriteByte('}')
	}
}

func writeString(buf *bytes.Buffer, s string) {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	buf.WriteString(strings.TrimSuffix(sb.String(), "\n"))
}
