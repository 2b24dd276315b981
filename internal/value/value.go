package value

// Value is a sealed interface representing an untyped, dynamically-shaped
// value. Only Null, Bool, Number, String, Sequence, and Mapping implement it.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null represents an absent value.
// Using an explicit type ensures all Values satisfy the sealed interface.
type Null struct{}

func (Null) value() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) value() {}

// Number represents a numeric value with JSON semantics (IEEE-754 double).
type Number float64

func (Number) value() {}

// String represents a text value.
type String string

func (String) value() {}

// Sequence represents an ordered list of values.
type Sequence []Value

func (Sequence) value() {}

// Entry is a single key/value pair in a Mapping.
type Entry struct {
	Key   string
	Value Value
}

// Mapping represents a keyed collection of values. Entry order is preserved
// end to end: field order is display order.
type Mapping []Entry

func (Mapping) value() {}

// Get returns the value for key and whether it was found.
func (m Mapping) Get(key string) (Value, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set replaces the value for key if present, otherwise appends a new entry.
func (m Mapping) Set(key string, v Value) Mapping {
	for i, e := range m {
		if e.Key == key {
			m[i].Value = v
			return m
		}
	}
	return append(m, Entry{Key: key, Value: v})
}

// Keys returns the mapping's keys in entry order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}
