// Package enum registers the legal values of string-backed enum types so
// raw strings read back from storage can be mapped to a known constant.
package enum

import (
	"fmt"
	"reflect"
)

var registry = map[reflect.Type]map[string]any{}

// New registers value as a member of its enum type and returns it, so
// declarations read as var Tip = enum.New(PurposeType("tip")).
func New[T ~string](value T) T {
	t := reflect.TypeOf(value)
	if registry[t] == nil {
		registry[t] = make(map[string]any)
	}

	registry[t][string(value)] = value
	return value
}

// ToEnum maps a raw string to the registered member of T it names.
func ToEnum[T ~string](s string) (T, error) {
	var zero T
	members, ok := registry[reflect.TypeOf(zero)]
	if !ok {
		return zero, fmt.Errorf("no registered values for %T", zero)
	}

	member, ok := members[s]
	if !ok {
		return zero, fmt.Errorf("%s is not a value of %T", s, zero)
	}

	return member.(T), nil
}
