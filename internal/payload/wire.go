package payload

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/witbench/witbench/internal/value"
	"github.com/witbench/witbench/internal/wit"
)

// MarshalWire serializes an encoded argument list as the invocation
// transport consumes it: a JSON array of {"value": ..., "typ": ...} pairs
// in declared parameter order.
//
// Differences from plain json.Marshal:
//  1. Mapping entry order is preserved (field order is display order)
//  2. Strings are NFC normalized at the serialization boundary
//  3. No HTML escaping (< > & are NOT escaped)
func MarshalWire(args []Arg) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')

	for i, arg := range args {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"value":`)
		if err := marshalWireValue(&buf, arg.Value); err != nil {
			return nil, fmt.Errorf("arg[%d]: %w", i, err)
		}
		buf.WriteString(`,"typ":`)
		typJSON, err := wit.MarshalTyp(arg.Typ)
		if err != nil {
			return nil, fmt.Errorf("arg[%d] typ: %w", i, err)
		}
		buf.Write(typJSON)
		buf.WriteByte('}')
	}

	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func marshalWireValue(buf *bytes.Buffer, v value.Value) error {
	switch val := v.(type) {
	case nil, value.Null:
		buf.WriteString("null")
		return nil

	case value.Bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil

	case value.Number:
		data, err := json.Marshal(float64(val))
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil

	case value.String:
		data, err := wireString(string(val))
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil

	case value.Sequence:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalWireValue(buf, elem); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
		return nil

	case value.Mapping:
		buf.WriteByte('{')
		for i, e := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := wireString(e.Key)
			if err != nil {
				return fmt.Errorf("key %q: %w", e.Key, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := marshalWireValue(buf, e.Value); err != nil {
				return fmt.Errorf("[%q]: %w", e.Key, err)
			}
		}
		buf.WriteByte('}')
		return nil

	default:
		return fmt.Errorf("unknown Value type: %T", v)
	}
}

// wireString produces a JSON string with NFC normalization and HTML
// escaping disabled.
func wireString(s string) ([]byte, error) {
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
