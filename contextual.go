package ctxskema

import (
	"context"

	"github.com/reoring/ctxskema/decode"
)

// Decoder is a decoder that depends on a context value C supplied at decode
// time. Building one does no decoding; applying it to a context yields the
// concrete decode.Decoder for that context.
type Decoder[I, O, C any] func(c C) decode.Decoder[I, O]

// WithContext returns the concrete decoder for c.
func (d Decoder[I, O, C]) WithContext(c C) decode.Decoder[I, O] { return d(c) }

// Decode decodes in with the decoder built for c.
func (d Decoder[I, O, C]) Decode(ctx context.Context, c C, in I) (O, error) {
	return d(c).Decode(ctx, in)
}

// Fields maps object keys to contextual field decoders sharing the context C.
type Fields[C any] map[string]Decoder[any, any, C]

// Contextualize lifts a context-free decoder. The context is ignored and the
// same decoder is returned for every context.
func Contextualize[I, O, C any](d decode.Decoder[I, O]) Decoder[I, O, C] {
	return func(C) decode.Decoder[I, O] { return d }
}

// Literal accepts exactly the given values regardless of context.
func Literal[C any, T comparable](first T, rest ...T) Decoder[any, T, C] {
	return Contextualize[any, T, C](decode.Literal(first, rest...))
}

// Number accepts numeric values regardless of context.
func Number[C any]() Decoder[any, float64, C] {
	return Contextualize[any, float64, C](decode.Number())
}

// String accepts string values regardless of context.
func String[C any]() Decoder[any, string, C] {
	return Contextualize[any, string, C](decode.String())
}

// Bool accepts bool values regardless of context.
func Bool[C any]() Decoder[any, bool, C] {
	return Contextualize[any, bool, C](decode.Bool())
}

// Field widens a field decoder's output to any so it can be placed in Fields.
func Field[O, C any](d Decoder[any, O, C]) Decoder[any, any, C] {
	return func(c C) decode.Decoder[any, any] { return decode.Field(d(c)) }
}

// Type builds an object decoder from fields. Every field decoder is given the
// same context; failures of all fields are collected.
func Type[C any](fields Fields[C]) Decoder[any, map[string]any, C] {
	cp := make(Fields[C], len(fields))
	for k, f := range fields {
		cp[k] = f
	}
	return func(c C) decode.Decoder[any, map[string]any] {
		built := make(decode.Fields, len(cp))
		for k, f := range cp {
			built[k] = f(c)
		}
		return decode.Type(built)
	}
}

// Array decodes []any input with elem built for the same context.
func Array[O, C any](elem Decoder[any, O, C]) Decoder[any, []O, C] {
	return func(c C) decode.Decoder[any, []O] { return decode.Array(elem(c)) }
}

// Compose feeds the output of a into b, both built for the same context. When
// a fails, its error is returned unchanged and b is not run.
func Compose[X, Y, Z, C any](a Decoder[X, Y, C], b Decoder[Y, Z, C]) Decoder[X, Z, C] {
	return func(c C) decode.Decoder[X, Z] {
		first := a(c)
		return decode.Func[X, Z](func(ctx context.Context, in X) (Z, error) {
			mid, err := first.Decode(ctx, in)
			if err != nil {
				var zero Z
				return zero, err
			}
			return b(c).Decode(ctx, mid)
		})
	}
}

// Map transforms the output of d with fn, which cannot fail.
func Map[I, A, B, C any](d Decoder[I, A, C], fn func(A) B) Decoder[I, B, C] {
	return func(c C) decode.Decoder[I, B] { return decode.Map(d(c), fn) }
}

// Parse refines the output of d with fn, which also receives the context. It
// is the one combinator where the context decides the outcome. fn reports
// rejection with decode.Failure(a, message).
func Parse[I, A, B, C any](d Decoder[I, A, C], fn func(a A, c C) (B, error)) Decoder[I, B, C] {
	return func(c C) decode.Decoder[I, B] {
		return decode.Parse(d(c), func(_ context.Context, a A) (B, error) { return fn(a, c) })
	}
}

// Into binds a decoded object onto T; use it after Type in Compose.
func Into[T, C any]() Decoder[map[string]any, T, C] {
	return Contextualize[map[string]any, T, C](decode.Into[T]())
}
