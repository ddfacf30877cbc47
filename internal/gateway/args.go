package gateway

import (
	"fmt"
	"math"
	"sort"
)

// Args wraps the dynamically-typed argument mapping of one invocation.
//
// Presence is map membership: a caller-supplied false or 0 is a present
// value and will be included in built provider requests. Optional accessors
// return nil pointers for absent arguments so SDK inputs omit those fields
// without further bookkeeping.
type Args struct {
	values map[string]interface{}
}

// NewArgs wraps an argument mapping. A nil map behaves as empty.
func NewArgs(values map[string]interface{}) Args {
	if values == nil {
		values = map[string]interface{}{}
	}
	return Args{values: values}
}

// Has reports whether the argument was supplied at all.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// String returns a required string argument.
func (a Args) String(name string) (string, error) {
	raw, ok := a.values[name]
	if !ok {
		return "", &MissingArgumentError{Arg: name}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &InvalidArgumentError{Arg: name, Reason: fmt.Sprintf("expected string, got %T", raw)}
	}
	return s, nil
}

// OptionalString returns a pointer to a string argument, nil when absent.
func (a Args) OptionalString(name string) (*string, error) {
	if !a.Has(name) {
		return nil, nil
	}
	s, err := a.String(name)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// StringOr returns an optional string argument or the fallback when absent.
func (a Args) StringOr(name, fallback string) (string, error) {
	if !a.Has(name) {
		return fallback, nil
	}
	return a.String(name)
}

// Bool returns a required boolean argument.
func (a Args) Bool(name string) (bool, error) {
	raw, ok := a.values[name]
	if !ok {
		return false, &MissingArgumentError{Arg: name}
	}
	b, ok := raw.(bool)
	if !ok {
		return false, &InvalidArgumentError{Arg: name, Reason: fmt.Sprintf("expected boolean, got %T", raw)}
	}
	return b, nil
}

// OptionalBool returns a pointer to a boolean argument, nil when absent.
// A supplied false is present and returns a non-nil pointer.
func (a Args) OptionalBool(name string) (*bool, error) {
	if !a.Has(name) {
		return nil, nil
	}
	b, err := a.Bool(name)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// BoolOr returns an optional boolean argument or the fallback when absent.
func (a Args) BoolOr(name string, fallback bool) (bool, error) {
	if !a.Has(name) {
		return fallback, nil
	}
	return a.Bool(name)
}

// intValue converts the JSON number representations into an int64.
func intValue(name string, raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, &InvalidArgumentError{Arg: name, Reason: fmt.Sprintf("expected integer, got %v", v)}
		}
		return int64(v), nil
	default:
		return 0, &InvalidArgumentError{Arg: name, Reason: fmt.Sprintf("expected integer, got %T", raw)}
	}
}

// Int64 returns a required integer argument. JSON numbers are accepted as
// long as they are integral.
func (a Args) Int64(name string) (int64, error) {
	raw, ok := a.values[name]
	if !ok {
		return 0, &MissingArgumentError{Arg: name}
	}
	return intValue(name, raw)
}

// OptionalInt64 returns a pointer to an integer argument, nil when absent.
// A supplied 0 is present and returns a non-nil pointer.
func (a Args) OptionalInt64(name string) (*int64, error) {
	if !a.Has(name) {
		return nil, nil
	}
	n, err := a.Int64(name)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Int32 returns a required integer argument narrowed to int32.
func (a Args) Int32(name string) (int32, error) {
	n, err := a.Int64(name)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, &InvalidArgumentError{Arg: name, Reason: fmt.Sprintf("value %d out of range", n)}
	}
	return int32(n), nil
}

// OptionalInt32 returns a pointer to an int32 argument, nil when absent.
func (a Args) OptionalInt32(name string) (*int32, error) {
	if !a.Has(name) {
		return nil, nil
	}
	n, err := a.Int32(name)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Int32Or returns an optional int32 argument or the fallback when absent.
func (a Args) Int32Or(name string, fallback int32) (int32, error) {
	if !a.Has(name) {
		return fallback, nil
	}
	return a.Int32(name)
}

// StringSlice returns a required array-of-strings argument.
func (a Args) StringSlice(name string) ([]string, error) {
	raw, ok := a.values[name]
	if !ok {
		return nil, &MissingArgumentError{Arg: name}
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, &InvalidArgumentError{Arg: name, Reason: fmt.Sprintf("expected array, got %T", raw)}
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, &InvalidArgumentError{Arg: name, Reason: fmt.Sprintf("element %d: expected string, got %T", i, item)}
		}
		out = append(out, s)
	}
	return out, nil
}

// OptionalStringSlice returns an array-of-strings argument, nil when absent.
func (a Args) OptionalStringSlice(name string) ([]string, error) {
	if !a.Has(name) {
		return nil, nil
	}
	return a.StringSlice(name)
}

// StringMap returns a required object argument whose values are all strings
// (tag maps, attribute maps).
func (a Args) StringMap(name string) (map[string]string, error) {
	raw, ok := a.values[name]
	if !ok {
		return nil, &MissingArgumentError{Arg: name}
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &InvalidArgumentError{Arg: name, Reason: fmt.Sprintf("expected object, got %T", raw)}
	}
	out := make(map[string]string, len(obj))
	for key, value := range obj {
		s, ok := value.(string)
		if !ok {
			return nil, &InvalidArgumentError{Arg: name, Reason: fmt.Sprintf("key %s: expected string value, got %T", key, value)}
		}
		out[key] = s
	}
	return out, nil
}

// OptionalStringMap returns a string-valued object argument, nil when absent.
func (a Args) OptionalStringMap(name string) (map[string]string, error) {
	if !a.Has(name) {
		return nil, nil
	}
	return a.StringMap(name)
}

// OptionalObject returns a free-form object argument, nil when absent.
func (a Args) OptionalObject(name string) (map[string]interface{}, error) {
	if !a.Has(name) {
		return nil, nil
	}
	raw := a.values[name]
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &InvalidArgumentError{Arg: name, Reason: fmt.Sprintf("expected object, got %T", raw)}
	}
	return obj, nil
}

// ObjectSlice returns a required array-of-objects argument (target lists,
// listener actions).
func (a Args) ObjectSlice(name string) ([]map[string]interface{}, error) {
	raw, ok := a.values[name]
	if !ok {
		return nil, &MissingArgumentError{Arg: name}
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, &InvalidArgumentError{Arg: name, Reason: fmt.Sprintf("expected array, got %T", raw)}
	}
	out := make([]map[string]interface{}, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, &InvalidArgumentError{Arg: name, Reason: fmt.Sprintf("element %d: expected object, got %T", i, item)}
		}
		out = append(out, obj)
	}
	return out, nil
}

// OptionalObjectSlice returns an array-of-objects argument, nil when absent.
func (a Args) OptionalObjectSlice(name string) ([]map[string]interface{}, error) {
	if !a.Has(name) {
		return nil, nil
	}
	return a.ObjectSlice(name)
}

// SortedKeys returns the keys of a string map in sorted order. JSON objects
// carry no insertion order, so built requests render map-valued arguments
// deterministically.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
