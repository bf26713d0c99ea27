package decode

import "context"

// Decoder maps an input I to an output O or to an error, normally Issues.
// Decoders hold no mutable state and may be shared between goroutines.
type Decoder[I, O any] interface {
	Decode(ctx context.Context, in I) (O, error)
}

// Func adapts a plain function to the Decoder interface.
type Func[I, O any] func(ctx context.Context, in I) (O, error)

// Decode calls f(ctx, in).
func (f Func[I, O]) Decode(ctx context.Context, in I) (O, error) { return f(ctx, in) }

// SafeDecode decodes in with d, returning (zero, false) on failure.
func SafeDecode[I, O any](ctx context.Context, d Decoder[I, O], in I) (O, bool) {
	v, err := d.Decode(ctx, in)
	if err != nil {
		var zero O
		return zero, false
	}
	return v, true
}

// Is returns true if in decodes successfully with d.
func Is[I, O any](ctx context.Context, d Decoder[I, O], in I) bool {
	_, err := d.Decode(ctx, in)
	return err == nil
}

// ---- Decode-time options carried by context.Context ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
)

// WithFailFast returns a child context that marks fail-fast decoding. Object
// and array decoders stop at the first failing member instead of collecting
// every failure.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current decode should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
