package decode

import (
	"context"

	"github.com/mitchellh/mapstructure"
)

// Into returns a decoder that binds an object map onto T using the json tags
// of T's fields. It is meant to follow Type in a Compose chain.
func Into[T any]() Decoder[map[string]any, T] {
	return Func[map[string]any, T](func(_ context.Context, m map[string]any) (T, error) {
		var out T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			Result:           &out,
			WeaklyTypedInput: false,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		})
		if err != nil {
			var zero T
			return zero, IssuesFrom(err, CodeParseError)
		}
		if err := dec.Decode(m); err != nil {
			var zero T
			return zero, Issues{{
				Path:          "/",
				Code:          CodeInvalidType,
				Message:       err.Error(),
				Cause:         err,
				InputFragment: renderValue(m),
			}}
		}
		return out, nil
	})
}
