// Package ctxskema adds an explicit context parameter to decoders.
//
// A Decoder[I, O, C] is a function from a context value C (limits, lookup
// tables, configuration known only at decode time) to a decode.Decoder[I, O].
// Validation logic can then depend on that data without global mutable state.
//
// - Contextualize lifts a context-free decoder; Literal, Number, String and Bool
//   are lifted primitives.
// - Type assembles an object decoder from Fields sharing one context; failures
//   of every field are collected.
// - Compose pipes one contextual decoder into another under the same context.
// - Parse refines a decoded value with a function that also receives the
//   context. It is the only combinator whose outcome depends on the context.
//
// Design policy:
// - Keep the combinators thin: the decoding rules and the Issues error model live
//   in package decode.
// - Decoders are pure values; build them once and reuse them with any context,
//   from any goroutine.
//
// Typical usage:
//
//	type Limits struct{ Max float64 }
//
//	count := ctxskema.Parse(ctxskema.Number[Limits](), func(n float64, l Limits) (float64, error) {
//	    if n > l.Max {
//	        return 0, decode.Failure(n, fmt.Sprintf("at most %v", l.Max))
//	    }
//	    return n, nil
//	})
//	req := ctxskema.Type(ctxskema.Fields[Limits]{"count": ctxskema.Field(count)})
//
//	v, err := ctxskema.DecodeJSON(ctx, req, Limits{Max: 10}, data)
//	if err != nil {
//	    fmt.Println(decode.Draw(err))
//	}
package ctxskema
