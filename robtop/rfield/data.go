// Package rfield turns flat delimited strings like "1:25:2:65" into ordered
// field maps and back.
package rfield

import (
	"strconv"

	"dash-savior/ds"
)

type (
	// FieldMap is an ordered association of field codes to values. A value is
	// either an int or a string. FieldMap values are not mutated after
	// Tokenize or Transform returns them.
	FieldMap struct {
		lhm *ds.LinkedHashMap[string, any]
	}
	// TransformFunc receives every field in order. Returning keep = false drops
	// the field from the new map.
	TransformFunc func(code string, value any) (newValue any, keep bool, err error)
)

const (
	DefaultSeparator = ":"
)

func newFieldMap() *FieldMap {
	return &FieldMap{
		lhm: ds.NewLinkedHashMap[string, any](),
	}
}

// FromPairs is meant for building field maps by hand, mostly in tests and on
// the request path. Values other than int and string are stored as their
// Text form.
func FromPairs(pairs ...any) *FieldMap {
	fieldMap := newFieldMap()
	for _, pair := range ds.MakeChunks(pairs, 2) {
		if len(pair) != 2 {
			break
		}
		code := Text(pair[0])
		switch value := pair[1].(type) {
		case int, string:
			fieldMap.lhm.Put(code, value)
		default:
			fieldMap.lhm.Put(code, Text(value))
		}
	}
	return fieldMap
}

func (r *FieldMap) Len() int {
	if r == nil {
		return 0
	}
	return r.lhm.Len()
}

func (r *FieldMap) Codes() []string {
	if r == nil {
		return []string{}
	}
	return r.lhm.Keys()
}

func (r *FieldMap) Has(code string) bool {
	return r != nil && r.lhm.Has(code)
}

func (r *FieldMap) Get(code string) (any, bool) {
	if r == nil {
		return nil, false
	}
	return r.lhm.Get(code)
}

// GetText returns the textual form of the value, which is the raw wire
// substring except for numbers written with leading zeroes.
func (r *FieldMap) GetText(code string) (string, bool) {
	value, ok := r.Get(code)
	if !ok {
		return "", false
	}
	return Text(value), true
}

// GetInt returns the value when it was coerced to a number; non-numeric text
// like "-1" is parsed as well since coercion only covers plain digits.
func (r *FieldMap) GetInt(code string) (int, bool) {
	value, ok := r.Get(code)
	if !ok {
		return 0, false
	}
	switch value := value.(type) {
	case int:
		return value, true
	case string:
		i, err := strconv.Atoi(value)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// IntOr is GetInt with a fallback for absent or non-numeric values.
func (r *FieldMap) IntOr(code string, fallback int) int {
	i, ok := r.GetInt(code)
	if !ok {
		return fallback
	}
	return i
}

// Truthy follows the wire convention for flags: a non-zero number or a
// non-empty string.
func (r *FieldMap) Truthy(code string) bool {
	value, ok := r.Get(code)
	if !ok {
		return false
	}
	switch value := value.(type) {
	case int:
		return value != 0
	case string:
		return value != "" && value != "0"
	}
	return false
}

// Transform builds a new FieldMap from the receiver and leaves the receiver
// untouched.
func (r *FieldMap) Transform(transformFunc TransformFunc) (*FieldMap, error) {
	result := newFieldMap()
	for _, code := range r.Codes() {
		value, _ := r.lhm.Get(code)
		newValue, keep, err := transformFunc(code, value)
		if err != nil {
			return nil, err
		}
		if keep {
			result.lhm.Put(code, newValue)
		}
	}
	return result, nil
}

func (r FieldMap) MarshalJSON() ([]byte, error) {
	if r.lhm == nil {
		return []byte("{}"), nil
	}
	return r.lhm.MarshalJSON()
}

// Text is the string form a value takes on the wire.
func Text(value any) string {
	switch value := value.(type) {
	case nil:
		return ""
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case uint32:
		return strconv.FormatUint(uint64(value), 10)
	case uint64:
		return strconv.FormatUint(value, 10)
	case bool:
		if value {
			return "1"
		}
		return "0"
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return ds.DumpJSON(value)
}
