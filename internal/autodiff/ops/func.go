package ops

import "github.com/born-ml/gradcore/internal/ndarray"

// ComputeFunc is the forward pass of a FuncOp.
type ComputeFunc func(xs []*ndarray.Array, training bool) *ndarray.Array

// GradFunc is the backward pass of a FuncOp.
type GradFunc func(y Tensor, xs []Tensor, gy Tensor) []Tensor

// FuncOp adapts plain functions to the Op interface, for operations defined
// outside this package that do not need their own type.
type FuncOp struct {
	name    string
	compute ComputeFunc
	grad    GradFunc
}

// NewFuncOp creates a new FuncOp. A nil grad makes the op non-differentiable:
// Grad then reports "no gradient" for every input.
func NewFuncOp(name string, compute ComputeFunc, grad GradFunc) *FuncOp {
	if compute == nil {
		panic("NewFuncOp: compute function is required")
	}
	return &FuncOp{name: name, compute: compute, grad: grad}
}

// Name returns the name given to NewFuncOp.
func (op *FuncOp) Name() string { return op.name }

// Compute calls the wrapped forward function.
func (op *FuncOp) Compute(xs []*ndarray.Array, training bool) *ndarray.Array {
	return op.compute(xs, training)
}

// Grad calls the wrapped backward function, or returns one nil entry per
// input when there is none.
func (op *FuncOp) Grad(y Tensor, xs []Tensor, gy Tensor) []Tensor {
	if op.grad == nil {
		return make([]Tensor, len(xs))
	}
	return op.grad(y, xs, gy)
}
