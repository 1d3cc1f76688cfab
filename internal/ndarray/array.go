// Package ndarray provides the dense float32 arrays of dynamic rank that back
// operation implementations, together with the generators that fill them.
//
// Arrays are value-like: every constructor and every shape helper returns a
// freshly owned buffer unless its documentation says otherwise (IntoMat).
// Random generators draw from a source created for that single call; the
// package keeps no generator state between calls.
//
// Precondition violations (bad shapes, bad axes, invalid distribution
// parameters) fail fast with a panic wrapping ErrInvalidArgument. Use Try or
// TrySample to obtain an error instead.
package ndarray

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// elementSize is the byte size of a float32 element.
const elementSize = 4

// Array is a dense, row-major, float32 array of dynamic rank.
type Array struct {
	shape Shape
	data  []float32
}

// newArray allocates a zero-filled array. The shape must already be validated.
func newArray(shape Shape) *Array {
	return &Array{
		shape: shape.Clone(),
		data:  make([]float32, shape.NumElements()),
	}
}

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's memory.
func FromSlice(data []float32, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	a := newArray(shape)
	copy(a.data, data)
	return a, nil
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Len returns the total number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// ByteSize returns the size of the element buffer in bytes.
func (a *Array) ByteSize() int {
	return len(a.data) * elementSize
}

// Data returns the array's element buffer in row-major order.
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array) Data() []float32 {
	return a.data
}

// Item returns the only element of a one-element array.
// Panics if the array holds any other number of elements.
func (a *Array) Item() float32 {
	if len(a.data) != 1 {
		failf("Item() requires exactly one element, got shape %v", a.shape)
	}
	return a.data[0]
}

// offset converts indices into a flat buffer position.
func (a *Array) offset(indices []int) int {
	if len(indices) != len(a.shape) {
		failf("expected %d indices, got %d", len(a.shape), len(indices))
	}
	off := 0
	strides := a.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			failf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i])
		}
		off += idx * strides[i]
	}
	return off
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array) At(indices ...int) float32 {
	return a.data[a.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array) Set(value float32, indices ...int) {
	a.data[a.offset(indices)] = value
}

// Clone returns a deep copy: the result shares no memory with a.
func (a *Array) Clone() *Array {
	c := &Array{
		shape: a.shape.Clone(),
		data:  make([]float32, len(a.data)),
	}
	copy(c.data, a.data)
	return c
}

// Reshape returns a copy of the array with a new shape holding the same
// number of elements.
func (a *Array) Reshape(shape Shape) *Array {
	mustValidShape("Reshape", shape)
	if shape.NumElements() != len(a.data) {
		failf("Reshape: cannot reshape %v (%d elements) into %v", a.shape, len(a.data), shape)
	}
	c := newArray(shape)
	copy(c.data, a.data)
	return c
}

// Equal reports whether both arrays have the same shape and elements.
// NaN elements never compare equal.
func (a *Array) Equal(other *Array) bool {
	if !a.shape.Equal(other.shape) {
		return false
	}
	for i, v := range a.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether both arrays have the same shape and every pair of
// elements differs by at most tol.
func (a *Array) AllClose(other *Array, tol float64) bool {
	if !a.shape.Equal(other.shape) {
		return false
	}
	for i, v := range a.data {
		if math.Abs(float64(v)-float64(other.data[i])) > tol {
			return false
		}
	}
	return true
}

// String summarizes the array; small arrays include their values.
func (a *Array) String() string {
	const maxShown = 16
	size := humanize.Bytes(uint64(a.ByteSize())) //nolint:gosec // G115: sizes are non-negative.
	if len(a.data) <= maxShown {
		return fmt.Sprintf("Array%v float32 %v", a.shape, a.data)
	}
	return fmt.Sprintf("Array%v float32 [%d elements, %s]", a.shape, len(a.data), size)
}
