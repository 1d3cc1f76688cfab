package ndarray

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerosOnes(t *testing.T) {
	shapes := []Shape{{}, {0}, {1}, {2, 3}, {2, 0, 5}, {4, 3, 2, 1}}
	for _, s := range shapes {
		z := Zeros(s)
		assert.Equal(t, s, z.Shape())
		assert.Len(t, z.Data(), s.NumElements())
		for _, v := range z.Data() {
			assert.Equal(t, float32(0), v)
		}

		o := Ones(s)
		assert.Equal(t, s, o.Shape())
		assert.Len(t, o.Data(), s.NumElements())
		for _, v := range o.Data() {
			assert.Equal(t, float32(1), v)
		}
	}
}

func TestZeros_2x3(t *testing.T) {
	z := Zeros(Shape{2, 3})
	assert.Equal(t, Shape{2, 3}, z.Shape())
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0}, z.Data())
}

func TestZeros_NegativeDimension(t *testing.T) {
	assert.Panics(t, func() { Zeros(Shape{2, -3}) })
}

func TestFull(t *testing.T) {
	f := Full(Shape{2, 2}, 3.5)
	assert.Equal(t, []float32{3.5, 3.5, 3.5, 3.5}, f.Data())
}

func TestFull_Large(t *testing.T) {
	f := Full(Shape{300, 300}, -2)
	for i, v := range f.Data() {
		if v != -2 {
			t.Fatalf("Full[%d] = %v, want -2", i, v)
		}
	}
}

func TestFromScalar(t *testing.T) {
	a := FromScalar(2.5)
	assert.Equal(t, Shape{1}, a.Shape())
	assert.Equal(t, []float32{2.5}, a.Data())
}

func TestPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 1000} {
		p := Permutation(n)
		require.Len(t, p, n)
		sorted := append([]int(nil), p...)
		sort.Ints(sorted)
		for i, v := range sorted {
			assert.Equal(t, i, v)
		}
	}
	assert.Panics(t, func() { Permutation(-1) })
}

func TestPermutation_Redraws(t *testing.T) {
	// Two independent 100-element permutations coincide with probability 1/100!.
	assert.NotEqual(t, Permutation(100), Permutation(100))
}

func TestArange(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step float32
		want             []float32
	}{
		{"unit step", 0, 5, 1, []float32{0, 1, 2, 3, 4}},
		{"fractional step", 0, 1, 0.25, []float32{0, 0.25, 0.5, 0.75}},
		{"non-divisible", 1, 6, 2, []float32{1, 3, 5}},
		{"descending", 5, 0, -2, []float32{5, 3, 1}},
		{"empty when equal", 3, 3, 1, []float32{}},
		{"empty when step points away", 0, 5, -1, []float32{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Arange(tt.start, tt.end, tt.step)
			assert.Equal(t, Shape{len(tt.want)}, a.Shape())
			assert.Equal(t, tt.want, a.Data())
		})
	}
}

func TestArange_InvalidStep(t *testing.T) {
	assert.Panics(t, func() { Arange(0, 5, 0) })
}
