package remoteid

import (
	"fmt"
	"strconv"
	"strings"
)

// enumEntry binds a wire code to a name. A code may appear more than once
// when the format defines aliases; the first entry is the canonical name.
type enumEntry[T ~uint8] struct {
	value T
	name  string
}

// enumTable is the discriminant table of one enumerated wire field
type enumTable[T ~uint8] struct {
	kind    string
	entries []enumEntry[T]
}

func newEnumTable[T ~uint8](kind string, entries []enumEntry[T]) *enumTable[T] {
	return &enumTable[T]{kind: kind, entries: entries}
}

// valid reports whether v has a defined variant
func (e *enumTable[T]) valid(v T) bool {
	for _, en := range e.entries {
		if en.value == v {
			return true
		}
	}
	return false
}

// name returns the canonical name of v, or a placeholder for undefined codes
func (e *enumTable[T]) name(v T) string {
	for _, en := range e.entries {
		if en.value == v {
			return en.name
		}
	}
	return fmt.Sprintf("UNDEFINED(0x%02X)", uint8(v))
}

// decode maps a raw wire code to its variant, failing on unmapped codes
func (e *enumTable[T]) decode(field string, code uint8) (T, error) {
	v := T(code)
	if !e.valid(v) {
		return 0, &InvalidEnumValueError{Field: field, Enum: e.kind, Value: code}
	}
	return v, nil
}

// check rejects values that have no variant before they are packed
func (e *enumTable[T]) check(field string, v T) error {
	if !e.valid(v) {
		return &InvalidEnumValueError{Field: field, Enum: e.kind, Value: uint8(v)}
	}
	return nil
}

// parse accepts a variant name (any case, '-' or '_') or a numeric code
func (e *enumTable[T]) parse(s string) (T, error) {
	key := strings.ReplaceAll(strings.TrimSpace(s), "-", "_")
	for _, en := range e.entries {
		if strings.EqualFold(en.name, key) {
			return en.value, nil
		}
	}
	if code, err := strconv.ParseUint(key, 0, 8); err == nil && e.valid(T(code)) {
		return T(code), nil
	}
	return 0, fmt.Errorf("unknown %s %q", e.kind, s)
}

func (e *enumTable[T]) marshal(v T) ([]byte, error) {
	if err := e.check(e.kind, v); err != nil {
		return nil, err
	}
	return []byte(e.name(v)), nil
}

func (e *enumTable[T]) unmarshal(dst *T, text []byte) error {
	v, err := e.parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
