// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the operation contract for automatic differentiation.
//
// A graph layer stores one Op per node. During the forward pass it calls
// Compute with the values of the node's inputs; during the backward pass it
// calls Grad with the gradient accumulated for the node's output and adds the
// returned per-input contributions to the input nodes.
//
// Example:
//
//	import (
//	    "github.com/born-ml/gradcore/autodiff"
//	    "github.com/born-ml/gradcore/ndarray"
//	)
//
//	func main() {
//	    op := autodiff.NewRangeOp(0, 5, 1)
//	    y, err := autodiff.TryCompute(op, nil, false) // [0 1 2 3 4]
//	    ...
//	}
package autodiff

import (
	"github.com/born-ml/gradcore/internal/autodiff/ops"
	"github.com/born-ml/gradcore/internal/ndarray"
)

// Op is the interface every computation-graph operation implements.
type Op = ops.Op

// Tensor is an opaque graph handle defined by the graph layer.
type Tensor = ops.Tensor

// SourceOp can be embedded by operations without differentiable inputs.
type SourceOp = ops.SourceOp

// Source operations.
type (
	ZerosOp           = ops.ZerosOp
	OnesOp            = ops.OnesOp
	RangeOp           = ops.RangeOp
	RangeDynamicOp    = ops.RangeDynamicOp
	ConvertToTensorOp = ops.ConvertToTensorOp
)

// FuncOp adapts plain functions to Op.
type FuncOp = ops.FuncOp

// ComputeFunc and GradFunc are the halves of a FuncOp.
type (
	ComputeFunc = ops.ComputeFunc
	GradFunc    = ops.GradFunc
)

// NewZerosOp creates an op producing zeros of the given shape.
func NewZerosOp(shape ndarray.Shape) *ZerosOp { return ops.NewZerosOp(shape) }

// NewOnesOp creates an op producing ones of the given shape.
func NewOnesOp(shape ndarray.Shape) *OnesOp { return ops.NewOnesOp(shape) }

// NewRangeOp creates an op producing start, start+step, ... up to end (exclusive).
func NewRangeOp(start, end, step float32) *RangeOp { return ops.NewRangeOp(start, end, step) }

// NewRangeDynamicOp creates an op reading start, end and step from its three inputs.
func NewRangeDynamicOp() *RangeDynamicOp { return ops.NewRangeDynamicOp() }

// NewConvertToTensorOp creates an op returning a copy of arr on every call.
func NewConvertToTensorOp(arr *ndarray.Array) *ConvertToTensorOp {
	return ops.NewConvertToTensorOp(arr)
}

// NewFuncOp wraps compute and grad as an Op; a nil grad makes it non-differentiable.
func NewFuncOp(name string, compute ComputeFunc, grad GradFunc) *FuncOp {
	return ops.NewFuncOp(name, compute, grad)
}

// TryCompute runs op.Compute, returning precondition violations as errors.
func TryCompute(op Op, xs []*ndarray.Array, training bool) (*ndarray.Array, error) {
	return ops.TryCompute(op, xs, training)
}

// TryGrad runs op.Grad and validates the number of returned gradients.
func TryGrad(op Op, y Tensor, xs []Tensor, gy Tensor) ([]Tensor, error) {
	return ops.TryGrad(op, y, xs, gy)
}

// BuiltinNames lists the names of the built-in source operations.
func BuiltinNames() []string { return ops.BuiltinNames() }
