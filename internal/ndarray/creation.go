package ndarray

import (
	"math"

	"github.com/born-ml/gradcore/internal/parallel"
)

// Zeros creates an array filled with zeros.
//
// Example:
//
//	a := ndarray.Zeros(ndarray.Shape{2, 3}) // 6 elements, all 0
func Zeros(shape Shape) *Array {
	mustValidShape("Zeros", shape)
	// Data is already zero-initialized by make()
	return newArray(shape)
}

// Ones creates an array filled with ones.
func Ones(shape Shape) *Array {
	return Full(shape, 1)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a := ndarray.Full(ndarray.Shape{3, 3}, 3.14)
func Full(shape Shape, value float32) *Array {
	mustValidShape("Full", shape)
	a := newArray(shape)
	parallel.ForRange(len(a.data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			a.data[i] = value
		}
	}, copyConfig)
	return a
}

// FromScalar creates a rank-1 array of length 1 holding v.
func FromScalar(v float32) *Array {
	a := newArray(Shape{1})
	a.data[0] = v
	return a
}

// Permutation returns a uniformly random permutation of 0..n-1.
// Each call draws from its own source.
func Permutation(n int) []int {
	if n < 0 {
		failf("Permutation: size must be >= 0, got %d", n)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	rng := newRand()
	rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	return perm
}

// Arange creates a rank-1 array holding start, start+step, ... up to end (exclusive).
// An empty array is returned when step points away from end.
//
// Example:
//
//	a := ndarray.Arange(0, 5, 1) // [0, 1, 2, 3, 4]
func Arange(start, end, step float32) *Array {
	if step == 0 {
		failf("Arange: step must be non-zero")
	}
	for _, v := range []float32{start, end, step} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			failf("Arange: start=%g end=%g step=%g must be finite", start, end, step)
		}
	}

	n := 0
	if steps := math.Ceil(float64((end - start) / step)); steps > 0 {
		n = int(steps)
	}

	a := newArray(Shape{n})
	for i := range a.data {
		a.data[i] = start + float32(i)*step
	}
	return a
}
