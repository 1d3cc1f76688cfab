package ops

import "github.com/born-ml/gradcore/internal/ndarray"

// ConvertToTensorOp injects a literal array into the graph.
type ConvertToTensorOp struct {
	SourceOp
	arr *ndarray.Array
}

// NewConvertToTensorOp creates a new ConvertToTensorOp holding a private copy of arr.
func NewConvertToTensorOp(arr *ndarray.Array) *ConvertToTensorOp {
	return &ConvertToTensorOp{arr: arr.Clone()}
}

// Name returns "ConvertToTensor".
func (op *ConvertToTensorOp) Name() string { return "ConvertToTensor" }

// Compute returns a fresh copy of the literal on every call, so callers may
// mutate the result freely.
func (op *ConvertToTensorOp) Compute(_ []*ndarray.Array, _ bool) *ndarray.Array {
	return op.arr.Clone()
}
