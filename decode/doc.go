// Package decode is the decoder layer ctxskema builds on.
//
// A Decoder[I, O] maps an input I to a typed O or to Issues, the structured
// error model shared by every package in this module:
//
//   - Primitives: String(), Bool(), Number(), Literal(v...), Unknown().
//   - Objects: Type(Fields{...}) decodes a map with every declared key; failures
//     of all fields are collected and rebased under their JSON Pointer.
//   - Arrays: Array(elem).
//   - Composition: Compose(a, b), Map(d, fn), Parse(d, refine).
//   - Binding: Into[T]() projects a decoded object onto a struct.
//   - Rendering: Draw(err) formats Issues as a tree for humans.
//
// Decoders are stateless; build them once and share them between goroutines.
// Decode-time behavior that is not part of the decoder itself (fail-fast) is
// carried by context.Context, see WithFailFast.
//
// Example
//
//	pos := decode.Parse(decode.Number(), func(_ context.Context, n float64) (float64, error) {
//	    if n <= 0 {
//	        return 0, decode.Failure(n, "positive")
//	    }
//	    return n, nil
//	})
//	obj := decode.Type(decode.Fields{"num": decode.Field(pos)})
//	_, err := obj.Decode(ctx, map[string]any{"num": -5.0})
//	fmt.Println(decode.Draw(err))
//	// required property "num"
//	// └─ cannot decode -5: positive
package decode
