package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l := New()
	require.NotNil(t, l)
}

func TestFromContext(t *testing.T) {
	t.Run("logger attached to ctx", func(t *testing.T) {
		l := New()
		ctx := context.WithValue(context.Background(), ContextKey, l)
		require.Equal(t, l, FromContext(ctx))
	})

	t.Run("falls back to a fresh logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
