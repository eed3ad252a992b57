package common

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	t.Parallel()

	err := NewError("code", "msg")
	require.Error(t, err)
	assert.Equal(t, "code: msg", err.Error())
	assert.Equal(t, "code", ErrorCode(err))
}

func TestNewErrorf(t *testing.T) {
	t.Parallel()

	err := NewErrorf("code", "a %d b %s", 1, "x")
	require.Error(t, err)
	assert.Equal(t, "code: a 1 b x", err.Error())
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	inner := NewError("inner_code", "msg")
	wrapped := fmt.Errorf("context: %w", inner)
	assert.Equal(t, "inner_code", ErrorCode(wrapped))
	assert.Equal(t, "", ErrorCode(fmt.Errorf("plain")))
}
