package ctxskema

import (
	"context"

	"github.com/reoring/ctxskema/decode"
	"github.com/reoring/ctxskema/source"
)

// DecodeJSON reads a JSON document and decodes it with d built for c.
func DecodeJSON[O, C any](ctx context.Context, d Decoder[any, O, C], c C, data []byte, opts ...source.Options) (O, error) {
	return DecodeFrom(ctx, d, c, source.FormatJSON, data, opts...)
}

// DecodeYAML reads the first YAML document and decodes it with d built for c.
func DecodeYAML[O, C any](ctx context.Context, d Decoder[any, O, C], c C, data []byte, opts ...source.Options) (O, error) {
	return DecodeFrom(ctx, d, c, source.FormatYAML, data, opts...)
}

// DecodeMsgPack reads a MessagePack value and decodes it with d built for c.
func DecodeMsgPack[O, C any](ctx context.Context, d Decoder[any, O, C], c C, data []byte, opts ...source.Options) (O, error) {
	return DecodeFrom(ctx, d, c, source.FormatMsgPack, data, opts...)
}

// DecodeFrom reads data in the given format and decodes it with d built for c.
// Read failures are returned as Issues like decode failures.
func DecodeFrom[O, C any](ctx context.Context, d Decoder[any, O, C], c C, format source.Format, data []byte, opts ...source.Options) (O, error) {
	v, err := source.Read(format, data, opts...)
	if err != nil {
		var zero O
		return zero, decode.IssuesFrom(err, decode.CodeParseError)
	}
	return d(c).Decode(ctx, v)
}

// SafeDecode decodes in under c, returning (zero, false) on failure.
func SafeDecode[I, O, C any](ctx context.Context, d Decoder[I, O, C], c C, in I) (O, bool) {
	return decode.SafeDecode(ctx, d(c), in)
}

// Is reports whether in decodes successfully under c.
func Is[I, O, C any](ctx context.Context, d Decoder[I, O, C], c C, in I) bool {
	return decode.Is(ctx, d(c), in)
}
