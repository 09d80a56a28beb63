package script

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/bjaus/uprint"
)

// Arg converts a decoded document value into a renderer.
//
// Scalars map directly: strings to [uprint.Str], booleans to [uprint.Bool],
// integers to [uprint.Int]. A single-key map selects a renderer by name:
//
//	{str: "true"}            verbatim text, even if it looks like a scalar
//	{int: -3}                signed decimal
//	{uint: 4000000000}       unsigned 32-bit decimal
//	{bool: true}
//	{char: "x"}              exactly one byte
//	{hex: 255}
//	{binary: 4}
//	{units: {value: 5, label: mA}}
//	{unspaced: <arg>}
//	{sep: nospace} / {sep: comma}
func Arg(v any) (uprint.Renderer, error) {
	switch v := v.(type) {
	case string:
		return uprint.Str(v), nil
	case bool:
		return uprint.Bool(v), nil
	case map[string]any:
		return mapArg(v)
	case nil:
		return nil, fmt.Errorf("%w: empty value", ErrInvalidArg)
	}
	n, ok := toInt64(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnknownArg, v)
	}
	if n < math.MinInt || n > math.MaxInt {
		return nil, fmt.Errorf("%w: %d overflows int", ErrInvalidArg, n)
	}
	return uprint.Int(n), nil
}

// Args converts each value with [Arg]. It stops at the first error and
// reports the argument's position.
func Args(vs []any) ([]uprint.Renderer, error) {
	out := make([]uprint.Renderer, 0, len(vs))
	for i, v := range vs {
		r, err := Arg(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func mapArg(m map[string]any) (uprint.Renderer, error) {
	if len(m) != 1 {
		return nil, fmt.Errorf("%w: want one key, got %s", ErrInvalidArg, keys(m))
	}
	var (
		key string
		v   any
	)
	for key, v = range m {
		break
	}
	switch key {
	case "str":
		s, ok := v.(string)
		if !ok {
			return nil, typeErr(key, "a string", v)
		}
		return uprint.Str(s), nil
	case "int":
		n, err := intIn(key, v, math.MinInt, math.MaxInt)
		if err != nil {
			return nil, err
		}
		return uprint.Int(n), nil
	case "uint":
		n, err := intIn(key, v, 0, math.MaxUint32)
		if err != nil {
			return nil, err
		}
		return uprint.Uint32(n), nil
	case "hex":
		n, err := intIn(key, v, math.MinInt32, math.MaxUint32)
		if err != nil {
			return nil, err
		}
		return uprint.Hex(uint32(n)), nil
	case "binary":
		n, err := intIn(key, v, math.MinInt32, math.MaxUint32)
		if err != nil {
			return nil, err
		}
		return uprint.Binary(uint32(n)), nil
	case "bool":
		b, ok := v.(bool)
		if !ok {
			return nil, typeErr(key, "a boolean", v)
		}
		return uprint.Bool(b), nil
	case "char":
		s, ok := v.(string)
		if !ok || len(s) != 1 {
			return nil, typeErr(key, "a single byte", v)
		}
		return uprint.Char(s[0]), nil
	case "units":
		return unitsArg(v)
	case "unspaced":
		inner, err := Arg(v)
		if err != nil {
			return nil, fmt.Errorf("unspaced: %w", err)
		}
		return uprint.Unspaced(inner), nil
	case "sep":
		switch v {
		case "nospace":
			return uprint.Nospace, nil
		case "comma":
			return uprint.Comma, nil
		}
		return nil, fmt.Errorf("%w: sep must be \"nospace\" or \"comma\", got %v", ErrInvalidArg, v)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownArg, key)
}

func unitsArg(v any) (uprint.Renderer, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, typeErr("units", "a map with value and label", v)
	}
	label, ok := m["label"].(string)
	if !ok {
		return nil, typeErr("units.label", "a string", m["label"])
	}
	value, err := Arg(m["value"])
	if err != nil {
		return nil, fmt.Errorf("units.value: %w", err)
	}
	return uprint.UnitsOf(value, label), nil
}

// intIn reads an integer and checks it against [lo, hi].
func intIn(key string, v any, lo, hi int64) (int64, error) {
	n, ok := toInt64(v)
	if !ok {
		return 0, typeErr(key, "an integer", v)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %s %d out of range [%d, %d]", ErrInvalidArg, key, n, lo, hi)
	}
	return n, nil
}

// toInt64 accepts the integer types produced by the YAML, TOML and JSON
// decoders. JSON numbers arrive as float64 and must be integral.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func typeErr(key, want string, got any) error {
	return fmt.Errorf("%w: %s must be %s, got %T", ErrInvalidArg, key, want, got)
}

func keys(m map[string]any) string {
	return "[" + strings.Join(slices.Sorted(maps.Keys(m)), " ") + "]"
}
