package decode

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/ctxskema/i18n"
)

// String returns a decoder that accepts string values.
func String() Decoder[any, string] { return stringDecoder{} }

// Bool returns a decoder that accepts bool values.
func Bool() Decoder[any, bool] { return boolDecoder{} }

// Number returns a decoder that accepts any Go numeric value or json.Number and
// yields it as float64. NaN is rejected; infinities are accepted.
func Number() Decoder[any, float64] { return numberDecoder{} }

// Unknown returns a decoder that accepts any value unchanged.
func Unknown() Decoder[any, any] {
	return Func[any, any](func(_ context.Context, v any) (any, error) { return v, nil })
}

// Literal returns a decoder that accepts exactly the given values. Strings,
// bools and other non-numeric literals require the input to have the same
// dynamic type and compare equal. Numeric literals match any numeric input of
// equal value (1 matches float64(1) and json.Number("1")); the literal itself
// is returned.
func Literal[T comparable](first T, rest ...T) Decoder[any, T] {
	vals := make([]T, 0, len(rest)+1)
	vals = append(vals, first)
	vals = append(vals, rest...)
	return literalDecoder[T]{values: vals}
}

type stringDecoder struct{}

func (stringDecoder) Decode(_ context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalidType("string", v)
	}
	return s, nil
}

type boolDecoder struct{}

func (boolDecoder) Decode(_ context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, invalidType("boolean", v)
	}
	return b, nil
}

type numberDecoder struct{}

func (numberDecoder) Decode(_ context.Context, v any) (float64, error) {
	f, ok := toFloat64(v)
	if !ok || math.IsNaN(f) {
		return 0, invalidType("number", v)
	}
	return f, nil
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

type literalDecoder[T comparable] struct {
	values []T
}

func (d literalDecoder[T]) Decode(_ context.Context, v any) (T, error) {
	if t, ok := v.(T); ok {
		for _, lit := range d.values {
			if t == lit {
				return t, nil
			}
		}
	}
	// Numbers compare by value across Go kinds, so a decoded float64 1 matches
	// the literal int 1. NaN equals nothing.
	if f, ok := toFloat64(v); ok {
		for _, lit := range d.values {
			if lf, ok := toFloat64(any(lit)); ok && lf == f {
				return lit, nil
			}
		}
	}
	var zero T
	expected := d.expected()
	return zero, Issues{{
		Path:          "/",
		Code:          CodeInvalidLiteral,
		Message:       i18n.T(CodeInvalidLiteral, map[string]string{"expected": expected}),
		InputFragment: renderValue(v),
		Params:        map[string]any{"expected": expected, "value": v},
	}}
}

// expected renders the literals as "A" | "B" | "C".
func (d literalDecoder[T]) expected() string {
	parts := make([]string, len(d.values))
	for i, lit := range d.values {
		parts[i] = renderValue(lit)
	}
	return strings.Join(parts, " | ")
}

func invalidType(expected string, v any) Issues {
	return Issues{{
		Path:          "/",
		Code:          CodeInvalidType,
		Message:       i18n.T(CodeInvalidType, map[string]string{"expected": expected}),
		InputFragment: renderValue(v),
		Params:        map[string]any{"expected": expected, "value": v},
	}}
}
