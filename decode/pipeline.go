package decode

import (
	"context"

	"github.com/reoring/ctxskema/i18n"
)

// Compose feeds the output of a into b. When a fails its error is returned
// unchanged and b is not called.
func Compose[X, Y, Z any](a Decoder[X, Y], b Decoder[Y, Z]) Decoder[X, Z] {
	return Func[X, Z](func(ctx context.Context, in X) (Z, error) {
		mid, err := a.Decode(ctx, in)
		if err != nil {
			var zero Z
			return zero, err
		}
		return b.Decode(ctx, mid)
	})
}

// Map transforms the output of d with fn, which cannot fail.
func Map[I, A, B any](d Decoder[I, A], fn func(A) B) Decoder[I, B] {
	return Func[I, B](func(ctx context.Context, in I) (B, error) {
		a, err := d.Decode(ctx, in)
		if err != nil {
			var zero B
			return zero, err
		}
		return fn(a), nil
	})
}

// Parse refines the output of d with fn. fn runs only when d succeeds and
// usually reports rejection with Failure. Errors that are not Issues are
// reported as a business_rule issue at the root.
func Parse[I, A, B any](d Decoder[I, A], fn func(ctx context.Context, a A) (B, error)) Decoder[I, B] {
	return Func[I, B](func(ctx context.Context, in I) (B, error) {
		a, err := d.Decode(ctx, in)
		if err != nil {
			var zero B
			return zero, err
		}
		b, err := fn(ctx, a)
		if err != nil {
			var zero B
			return zero, refineIssues(a, err)
		}
		return b, nil
	})
}

// Failure rejects value with msg. It is the error refinements return.
func Failure(value any, msg string) error {
	if msg == "" {
		msg = i18n.T(CodeBusinessRule, nil)
	}
	return Issues{{
		Path:          "/",
		Code:          CodeBusinessRule,
		Message:       msg,
		InputFragment: renderValue(value),
		Params:        map[string]any{"value": value},
	}}
}

func refineIssues(value any, err error) Issues {
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{{
		Path:          "/",
		Code:          CodeBusinessRule,
		Message:       err.Error(),
		Cause:         err,
		InputFragment: renderValue(value),
		Params:        map[string]any{"value": value},
	}}
}
