package ctxskema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/ctxskema"
	"github.com/reoring/ctxskema/decode"
)

func TestResolve_ReadsContextFromContextContext(t *testing.T) {
	d := ctxskema.Resolve(checkedNumber())

	ctx := ctxskema.WithService(context.Background(), positiveContext)
	v, err := d.Decode(ctx, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = d.Decode(ctx, -2.0)
	iss, ok := decode.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, decode.CodeBusinessRule, iss[0].Code)
}

func TestResolve_MissingContext(t *testing.T) {
	d := ctxskema.Resolve(checkedNumber())
	_, err := d.Decode(context.Background(), 2.0)
	iss, ok := decode.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, decode.CodeDependencyUnavailable, iss[0].Code)
}

func TestService_TypedLookup(t *testing.T) {
	ctx := ctxskema.WithService(context.Background(), "limits")
	s, ok := ctxskema.Service[string](ctx)
	assert.True(t, ok)
	assert.Equal(t, "limits", s)

	_, ok = ctxskema.Service[int](ctx)
	assert.False(t, ok)
}
