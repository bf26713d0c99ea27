package ctxskema

import (
	"context"

	"github.com/reoring/ctxskema/decode"
	"github.com/reoring/ctxskema/i18n"
)

// serviceKey is a unique key per type parameter C for context storage.
type serviceKey[C any] struct{}

// WithService stores a decode context value in ctx for use by Resolve.
func WithService[C any](ctx context.Context, c C) context.Context {
	return context.WithValue(ctx, serviceKey[C]{}, any(c))
}

// Service retrieves a decode context value stored by WithService.
func Service[C any](ctx context.Context) (C, bool) {
	var zero C
	v := ctx.Value(serviceKey[C]{})
	if v == nil {
		return zero, false
	}
	if tv, ok := v.(C); ok {
		return tv, true
	}
	return zero, false
}

// Resolve returns a plain decoder that looks up C in the context.Context at
// decode time and decodes with d built for it. A missing C is reported as
// dependency_unavailable.
func Resolve[I, O, C any](d Decoder[I, O, C]) decode.Decoder[I, O] {
	return decode.Func[I, O](func(ctx context.Context, in I) (O, error) {
		c, ok := Service[C](ctx)
		if !ok {
			var zero O
			return zero, decode.Issues{{Path: "/", Code: decode.CodeDependencyUnavailable, Message: i18n.T(decode.CodeDependencyUnavailable, nil)}}
		}
		return d(c).Decode(ctx, in)
	})
}
