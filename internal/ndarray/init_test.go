package ndarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlorotUniform(t *testing.T) {
	shape := Shape{300, 400}
	w := GlorotUniform(shape)
	assert.Equal(t, shape, w.Shape())

	bound := float32(math.Sqrt(6.0 / 300))
	for _, v := range w.Data() {
		require.GreaterOrEqual(t, v, -bound)
		require.Less(t, v, bound)
	}
	mean, std := meanStd(w.Data())
	assert.InDelta(t, 0.0, mean, 0.005)
	// Uniform(-s, s) has stddev s/sqrt(3).
	assert.InDelta(t, float64(bound)/math.Sqrt(3), std, 0.005)
}

func TestGlorotNormal(t *testing.T) {
	shape := Shape{400, 250}
	w := GlorotNormal(shape)
	assert.Equal(t, shape, w.Shape())

	mean, std := meanStd(w.Data())
	assert.InDelta(t, 0.0, mean, 0.002)
	assert.InDelta(t, 1/math.Sqrt(400), std, 0.002)
}

func TestGlorot_RequiresRank2(t *testing.T) {
	for _, s := range []Shape{{}, {10}, {2, 3, 4}} {
		assert.Panics(t, func() { GlorotNormal(s) }, "GlorotNormal%v", s)
		assert.Panics(t, func() { GlorotUniform(s) }, "GlorotUniform%v", s)
	}
}

func TestGlorot_ZeroFanIn(t *testing.T) {
	assert.Panics(t, func() { GlorotUniform(Shape{0, 3}) })
}

func TestGlorot_CheckedEntry(t *testing.T) {
	_, err := Try(func() *Array { return GlorotUniform(Shape{3}) })
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "exactly 2 dimensions")
}
