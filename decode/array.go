package decode

import "context"

// Array returns a decoder for []any input whose elements are decoded by elem.
// Element failures are collected under their index unless the context is
// marked fail-fast.
func Array[O any](elem Decoder[any, O]) Decoder[any, []O] {
	return &arrayDecoder[O]{elem: elem}
}

type arrayDecoder[O any] struct {
	elem Decoder[any, O]
}

func (a *arrayDecoder[O]) Decode(ctx context.Context, v any) ([]O, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, invalidType("array", v)
	}
	res := make([]O, 0, len(src))
	var iss Issues
	for i := range src {
		ev, err := a.elem.Decode(ctx, src[i])
		if err != nil {
			iss = AppendIssues(iss, Root().Index(i).Rebase(IssuesFrom(err, CodeParseError))...)
			if IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		res = append(res, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return res, nil
}
