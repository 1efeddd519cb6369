package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	base, err := New("debug", "json")
	require.NoError(t, err)

	child := base.With(StringField("request_id", "abc"))
	ctx := NewContext(context.Background(), child)

	assert.Same(t, child, base.FromContext(ctx))
	assert.Same(t, base, base.FromContext(context.Background()))
	assert.Same(t, base, base.FromContext(nil))
}
