package ndarray

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTry_PassesResultThrough(t *testing.T) {
	x := must.M1(Try(func() *Array { return ExpandDims(Zeros(Shape{3, 4}), 1) }))
	assert.Equal(t, Shape{3, 1, 4}, x.Shape())
}

func TestTry_CatchesPreconditionViolation(t *testing.T) {
	x, err := Try(func() *Array { return ExpandDims(Zeros(Shape{3, 4}), 5) })
	require.Error(t, err)
	assert.Nil(t, x)
	assert.True(t, IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "ExpandDims")
}

func TestTry_RethrowsNonErrorPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = Try(func() int { panic("not an error") })
	})
}

func TestIsInvalidArgument(t *testing.T) {
	_, err := FromSlice([]float32{1}, Shape{2})
	require.Error(t, err)
	assert.False(t, IsInvalidArgument(err), "data errors are not precondition violations")
}
