package database

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Ordered canonical JSON. Unlike RFC 8785, object keys keep the order the
// caller built them in — the database wants numeric group order and the
// canonical zone order, not UTF-16 key sorting. Strings are NFC normalized
// and never HTML-escaped, so output bytes depend only on content.

// member is one key/value pair of an ordered object.
type member struct {
	key string
	val any
}

// object is an ordered JSON object.
type object []member

// array is a JSON array.
type array []any

func marshalCanonical(v any) ([]byte, error) {
	switch val := v.(type) {
	case object:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, m := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := marshalCanonicalString(m.key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			elem, err := marshalCanonical(m.val)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", m.key, err)
			}
			buf.Write(elem)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case array:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			elem, err := marshalCanonical(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			buf.Write(elem)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case string:
		return marshalCanonicalString(val)
	case int:
		return []byte(fmt.Sprintf("%d", val)), nil
	case bool:
		if val {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	default:
		return nil, fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
}

// marshalCanonicalString emits an NFC-normalized JSON string without HTML
// escaping (< > & stay literal).
func marshalCanonicalString(s string) ([]byte, error) {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	// json.Encoder adds a trailing newline, remove it.
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}
	return result, nil
}
