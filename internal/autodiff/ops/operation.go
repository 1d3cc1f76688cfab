// Package ops defines the operation contract for automatic differentiation
// and the source operations that produce leaf values of a graph.
//
// Each operation implements the Op interface, which provides:
//   - Forward pass: Compute evaluates the node from its input values
//   - Backward pass: Grad reports per-input gradient contributions
//
// Source operations (no differentiable inputs):
//   - ZerosOp, OnesOp: constant-shape fills
//   - RangeOp: arithmetic sequence with fixed bounds
//   - RangeDynamicOp: arithmetic sequence read from three scalar inputs
//   - ConvertToTensorOp: injects a literal array into the graph
//
// The graph layer owns nodes and gradient accumulation; an Op never keeps a
// reference to the node that holds it.
package ops

import "github.com/born-ml/gradcore/internal/ndarray"

// Tensor is an opaque handle to a graph node or gradient value.
// Its representation belongs to the graph layer.
type Tensor any

// Op represents a differentiable operation in the computation graph.
// Implementations must be immutable so that independent nodes can be
// evaluated concurrently.
type Op interface {
	// Name returns a stable identifier used in diagnostics, e.g. "Zeros".
	Name() string

	// Compute evaluates the forward pass from the values of the input nodes.
	// The inputs are borrowed; the returned array is owned by the caller.
	// training is true during training for ops whose forward pass differs
	// between training and inference (e.g. dropout).
	Compute(xs []*ndarray.Array, training bool) *ndarray.Array

	// Grad computes gradients for inputs given the output gradient gy.
	// Returns one entry per input, where nil means "no gradient" for that
	// input. Ops without inputs return an empty slice.
	//
	// Example for an element-wise add:
	//   xs: [a, b]
	//   gy: dL/d(a+b)
	//   returns: [gy, gy]
	Grad(y Tensor, xs []Tensor, gy Tensor) []Tensor
}

// SourceOp is embedded by operations without differentiable inputs.
type SourceOp struct{}

// Grad returns an empty slice: a source has no input to propagate to.
func (SourceOp) Grad(_ Tensor, _ []Tensor, _ Tensor) []Tensor {
	return []Tensor{}
}

// BuiltinNames lists the names of the source operations in this package.
func BuiltinNames() []string {
	return []string{"Zeros", "Ones", "Range", "RangeDynamic", "ConvertToTensor"}
}
