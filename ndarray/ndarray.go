// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the public API for dense float32 arrays.
//
// The package covers:
//   - Array, Shape, Matrix: dense row-major storage of dynamic rank
//   - Zeros, Ones, Full, FromScalar, Arange, Permutation: deterministic constructors
//   - Sample and the named generators: random arrays from a Distribution
//   - GlorotNormal, GlorotUniform: weight initialization
//   - ExpandDims, RollAxis, IntoMat: shape helpers
//
// Precondition violations panic with an error wrapping ErrInvalidArgument;
// wrap calls in Try (or use TrySample) to get an error instead.
//
// Example:
//
//	w := ndarray.GlorotUniform(ndarray.Shape{784, 128})
//	b := ndarray.Zeros(ndarray.Shape{128})
package ndarray

import (
	"github.com/born-ml/gradcore/internal/ndarray"
)

// Array is a dense, row-major float32 array of dynamic rank.
type Array = ndarray.Array

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = ndarray.Shape

// Matrix is a rank-2 view over an array buffer.
type Matrix = ndarray.Matrix

// Distribution is a parameter record for Sample.
type Distribution = ndarray.Distribution

// Distribution parameter records.
type (
	Normal      = ndarray.Normal
	Uniform     = ndarray.Uniform
	Exponential = ndarray.Exponential
	LogNormal   = ndarray.LogNormal
	Gamma       = ndarray.Gamma
	Bernoulli   = ndarray.Bernoulli
)

// ErrInvalidArgument is wrapped by every precondition violation.
var ErrInvalidArgument = ndarray.ErrInvalidArgument

// FromSlice creates an array from a Go slice (the data is copied).
func FromSlice(data []float32, shape Shape) (*Array, error) {
	return ndarray.FromSlice(data, shape)
}

// Zeros creates an array filled with zeros.
func Zeros(shape Shape) *Array { return ndarray.Zeros(shape) }

// Ones creates an array filled with ones.
func Ones(shape Shape) *Array { return ndarray.Ones(shape) }

// Full creates an array filled with value.
func Full(shape Shape, value float32) *Array { return ndarray.Full(shape, value) }

// FromScalar creates a one-element rank-1 array.
func FromScalar(v float32) *Array { return ndarray.FromScalar(v) }

// Arange creates the rank-1 sequence start, start+step, ... up to end (exclusive).
func Arange(start, end, step float32) *Array { return ndarray.Arange(start, end, step) }

// Permutation returns a uniformly random permutation of 0..n-1.
func Permutation(n int) []int { return ndarray.Permutation(n) }

// Sample fills an array of the given shape with independent draws from dist.
func Sample(shape Shape, dist Distribution) *Array { return ndarray.Sample(shape, dist) }

// TrySample is Sample returning invalid arguments as errors.
func TrySample(shape Shape, dist Distribution) (*Array, error) {
	return ndarray.TrySample(shape, dist)
}

// RandomNormal samples from N(mean, stddev²).
func RandomNormal(shape Shape, mean, stddev float64) *Array {
	return ndarray.RandomNormal(shape, mean, stddev)
}

// StandardNormal samples from N(0, 1).
func StandardNormal(shape Shape) *Array { return ndarray.StandardNormal(shape) }

// RandomUniform samples uniformly from [minVal, maxVal).
func RandomUniform(shape Shape, minVal, maxVal float64) *Array {
	return ndarray.RandomUniform(shape, minVal, maxVal)
}

// StandardUniform samples uniformly from [0, 1).
func StandardUniform(shape Shape) *Array { return ndarray.StandardUniform(shape) }

// ExponentialSample samples from Exp(lambda).
func ExponentialSample(shape Shape, lambda float64) *Array {
	return ndarray.ExponentialSample(shape, lambda)
}

// LogNormalSample samples exp(X) with X ~ N(mean, stddev²).
func LogNormalSample(shape Shape, mean, stddev float64) *Array {
	return ndarray.LogNormalSample(shape, mean, stddev)
}

// GammaSample samples from Gamma(shapeParam, scale).
func GammaSample(shape Shape, shapeParam, scale float64) *Array {
	return ndarray.GammaSample(shape, shapeParam, scale)
}

// BernoulliSample yields 1 with probability p and 0 otherwise.
func BernoulliSample(shape Shape, p float64) *Array { return ndarray.BernoulliSample(shape, p) }

// GlorotNormal initializes a [fanIn, fanOut] weight matrix from N(0, 1/fanIn).
func GlorotNormal(shape Shape) *Array { return ndarray.GlorotNormal(shape) }

// GlorotUniform initializes a [fanIn, fanOut] weight matrix from U(-s, s), s = sqrt(6/fanIn).
func GlorotUniform(shape Shape) *Array { return ndarray.GlorotUniform(shape) }

// ExpandDims returns a copy of x with a size-1 dimension inserted at axis.
func ExpandDims(x *Array, axis int) *Array { return ndarray.ExpandDims(x, axis) }

// RollAxis moves axis from to position to, in place.
func RollAxis(x *Array, to, from int) { ndarray.RollAxis(x, to, from) }

// IntoMat reinterprets a rank-2 array as a Matrix; x must not be used afterwards.
func IntoMat(x *Array) Matrix { return ndarray.IntoMat(x) }

// Try runs fn and returns a precondition violation as an error.
func Try[T any](fn func() T) (T, error) { return ndarray.Try(fn) }

// IsInvalidArgument reports whether err stems from a precondition violation.
func IsInvalidArgument(err error) bool { return ndarray.IsInvalidArgument(err) }
