package ctxskema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/reoring/ctxskema"
	"github.com/reoring/ctxskema/decode"
	"github.com/reoring/ctxskema/source"
)

func numObject() ctxskema.Decoder[any, map[string]any, numberContext] {
	return ctxskema.Type(ctxskema.Fields[numberContext]{
		"num":  ctxskema.Field(checkedNumber()),
		"kind": ctxskema.Field(ctxskema.Literal[numberContext]("a", "b")),
	})
}

func TestDecodeJSON(t *testing.T) {
	v, err := ctxskema.DecodeJSON(context.Background(), numObject(), positiveContext, []byte(`{"num":5,"kind":"a"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"num": 5.0, "kind": "a"}, v)

	_, err = ctxskema.DecodeJSON(context.Background(), numObject(), positiveContext, []byte(`{"num":`))
	iss, ok := decode.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, decode.CodeParseError, iss[0].Code)
}

func TestDecodeYAML(t *testing.T) {
	_, err := ctxskema.DecodeYAML(context.Background(), numObject(), positiveContext, []byte("num: -5\nkind: c\n"))
	iss, ok := decode.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 2)
	assert.Equal(t, "/kind", iss[0].Path)
	assert.Equal(t, "/num", iss[1].Path)
}

func TestDecodeMsgPack(t *testing.T) {
	b, err := msgpack.Marshal(map[string]any{"num": 7, "kind": "b"})
	require.NoError(t, err)
	v, err := ctxskema.DecodeMsgPack(context.Background(), numObject(), positiveContext, b)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"num": 7.0, "kind": "b"}, v)
}

func TestDecodeFrom_FailFastAndNumberMode(t *testing.T) {
	ctx := decode.WithFailFast(context.Background(), true)
	_, err := ctxskema.DecodeFrom(ctx, numObject(), positiveContext, source.FormatJSON, []byte(`{}`))
	iss, ok := decode.AsIssues(err)
	require.True(t, ok)
	assert.Len(t, iss, 1)

	v, err := ctxskema.DecodeFrom(context.Background(), numObject(), positiveContext, source.FormatJSON,
		[]byte(`{"num":1.5,"kind":"a"}`), source.Options{NumberMode: source.NumberJSON})
	require.NoError(t, err)
	assert.Equal(t, 1.5, v["num"])
}

func TestDecodeJSON_NumericLiteral(t *testing.T) {
	lit := ctxskema.Literal[struct{}](1, 2, 3)
	for _, mode := range []source.NumberMode{source.NumberFloat64, source.NumberJSON} {
		v, err := ctxskema.DecodeJSON(context.Background(), lit, struct{}{}, []byte(`2`), source.Options{NumberMode: mode})
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	}

	v, err := ctxskema.DecodeYAML(context.Background(), lit, struct{}{}, []byte("3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = ctxskema.DecodeJSON(context.Background(), lit, struct{}{}, []byte(`4`))
	require.Error(t, err)
	assert.Equal(t, "cannot decode 4: expected one of 1 | 2 | 3", decode.Draw(err))
}
