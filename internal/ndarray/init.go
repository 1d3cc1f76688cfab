package ndarray

import "math"

// fanIn returns the fan-in of a [fanIn, fanOut] weight shape.
// Panics unless the shape has exactly two dimensions.
func fanIn(op string, shape Shape) int {
	if len(shape) != 2 {
		failf("%s: weight shape must have exactly 2 dimensions, got %v", op, shape)
	}
	mustValidShape(op, shape)
	if shape[0] == 0 {
		failf("%s: fan-in of shape %v must be positive", op, shape)
	}
	return shape[0]
}

// GlorotNormal (a.k.a. Xavier normal) initialization for a [fanIn, fanOut]
// weight matrix: values drawn from N(0, 1/fanIn).
func GlorotNormal(shape Shape) *Array {
	n := fanIn("GlorotNormal", shape)
	return Sample(shape, Normal{Mean: 0, StdDev: 1 / math.Sqrt(float64(n))})
}

// GlorotUniform (a.k.a. Xavier uniform) initialization for a [fanIn, fanOut]
// weight matrix: values drawn from U(-s, s) with s = sqrt(6/fanIn).
func GlorotUniform(shape Shape) *Array {
	n := fanIn("GlorotUniform", shape)
	s := math.Sqrt(6 / float64(n))
	return Sample(shape, Uniform{Min: -s, Max: s})
}
