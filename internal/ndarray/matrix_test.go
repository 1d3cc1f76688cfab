package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestIntoMat(t *testing.T) {
	x := Arange(0, 6, 1).Reshape(Shape{2, 3})
	m := IntoMat(x)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, float32(5), m.At(1, 2))

	m.Set(0, 0, 42)
	assert.Equal(t, float32(42), m.Array().At(0, 0))
	assert.Panics(t, func() { m.At(2, 0) })
}

func TestIntoMat_RequiresRank2(t *testing.T) {
	assert.Panics(t, func() { IntoMat(Zeros(Shape{6})) })
	assert.Panics(t, func() { IntoMat(Zeros(Shape{1, 2, 3})) })

	_, err := Try(func() Matrix { return IntoMat(Zeros(Shape{6})) })
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestMatrix_Dense(t *testing.T) {
	a := IntoMat(Arange(1, 5, 1).Reshape(Shape{2, 2}))
	d := a.Dense()
	require.NotNil(t, d)

	var sq mat.Dense
	sq.Mul(d, d)
	// [[1 2] [3 4]]² = [[7 10] [15 22]]
	got := FromDense(&sq)
	assert.Equal(t, []float32{7, 10, 15, 22}, got.Data())
	assert.Equal(t, Shape{2, 2}, got.Array().Shape())
}

func TestMatrix_DenseEmpty(t *testing.T) {
	assert.Nil(t, IntoMat(Zeros(Shape{0, 3})).Dense())
}
