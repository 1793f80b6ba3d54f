package pddl

import (
	"fmt"
	"strconv"
	"strings"
)

// Options carries caller-chosen parameters into init and goal builders, for
// example the start cell of a grid problem. Values come from CLI key=value
// flags (strings) or YAML option files (any scalar or list).
type Options map[string]any

// Merge returns a copy of o overlaid with other.
func (o Options) Merge(other Options) Options {
	out := make(Options, len(o)+len(other))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Lookup returns the raw value for key.
func (o Options) Lookup(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o[key]
	return v, ok
}

// String returns the value for key formatted as a string, or fallback.
func (o Options) String(key, fallback string) string {
	v, ok := o.Lookup(key)
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Int returns the value for key as an int, or fallback when absent.
func (o Options) Int(key string, fallback int) (int, error) {
	v, ok := o.Lookup(key)
	if !ok || v == nil {
		return fallback, nil
	}
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("option %s: %w", key, err)
	}
	return n, nil
}

// Ints returns the value for key as a list of ints. Lists and comma separated
// strings are accepted; an absent key returns fallback.
func (o Options) Ints(key string, fallback []int) ([]int, error) {
	v, ok := o.Lookup(key)
	if !ok || v == nil {
		return fallback, nil
	}
	var raw []any
	switch typed := v.(type) {
	case []int:
		return typed, nil
	case []any:
		raw = typed
	case string:
		for _, part := range strings.Split(typed, ",") {
			raw = append(raw, strings.TrimSpace(part))
		}
	default:
		raw = []any{typed}
	}
	out := make([]int, 0, len(raw))
	for i, item := range raw {
		n, err := toInt(item)
		if err != nil {
			return nil, fmt.Errorf("option %s[%d]: %w", key, i, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}
