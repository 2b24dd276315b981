package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Marshal serializes a value to JSON. Mapping entries are written in entry
// order. A nil Value marshals to null.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := marshal(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshal(buf *bytes.Buffer, v Value) error {
	switch val := v.(type) {
	case nil, Null:
		buf.WriteString("null")
		return nil

	case Bool:
		data, err := json.Marshal(bool(val))
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil

	case Number:
		data, err := json.Marshal(float64(val))
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil

	case String:
		data, err := json.Marshal(string(val))
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil

	case Sequence:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshal(buf, elem); err != nil {
				return fmt.Errorf("sequence[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
		return nil

	case Mapping:
		buf.WriteByte('{')
		for i, e := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return fmt.Errorf("mapping key %q: %w", e.Key, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := marshal(buf, e.Value); err != nil {
				return fmt.Errorf("mapping value for %q: %w", e.Key, err)
			}
		}
		buf.WriteByte('}')
		return nil

	default:
		return fmt.Errorf("unknown Value type: %T", v)
	}
}

// MarshalJSON implements json.Marshaler for Null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON implements json.Marshaler for Mapping, preserving entry order.
func (m Mapping) MarshalJSON() ([]byte, error) {
	return Marshal(m)
}

// Unmarshal parses JSON into a Value. Object entry order is preserved.
func Unmarshal(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// Reject trailing content after the first value.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after JSON value")
	}
	return v, nil
}

// decodeValue decodes the next complete value from the token stream.
// Token-level decoding is what preserves object entry order; unmarshaling
// through a map would lose it.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			seq := Sequence{}
			for dec.More() {
				elem, err := decodeValue(dec)
				if err != nil {
					return nil, fmt.Errorf("sequence[%d]: %w", len(seq), err)
				}
				seq = append(seq, elem)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return seq, nil

		case '{':
			m := Mapping{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, want string", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, fmt.Errorf("mapping value for %q: %w", key, err)
				}
				m = append(m, Entry{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return m, nil

		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}

	case string:
		return String(t), nil

	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %s: %w", t, err)
		}
		return Number(f), nil

	case bool:
		return Bool(t), nil

	case nil:
		return Null{}, nil

	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// ParseLenient parses free-form editor text as JSON. If the text does not
// parse, the original text is returned unchanged as a String: user input is
// preserved, never discarded.
func ParseLenient(text string) Value {
	v, err := Unmarshal([]byte(text))
	if err != nil {
		return String(text)
	}
	return v
}
