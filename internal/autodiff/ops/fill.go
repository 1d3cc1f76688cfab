package ops

import "github.com/born-ml/gradcore/internal/ndarray"

// ZerosOp produces a zero-filled array of a fixed shape.
type ZerosOp struct {
	SourceOp
	shape ndarray.Shape
}

// NewZerosOp creates a new ZerosOp. The shape is copied.
func NewZerosOp(shape ndarray.Shape) *ZerosOp {
	return &ZerosOp{shape: shape.Clone()}
}

// Name returns "Zeros".
func (op *ZerosOp) Name() string { return "Zeros" }

// Shape returns a copy of the output shape.
func (op *ZerosOp) Shape() ndarray.Shape { return op.shape.Clone() }

// Compute returns ndarray.Zeros(shape); inputs are ignored.
func (op *ZerosOp) Compute(_ []*ndarray.Array, _ bool) *ndarray.Array {
	return ndarray.Zeros(op.shape)
}

// OnesOp produces an array of ones of a fixed shape.
type OnesOp struct {
	SourceOp
	shape ndarray.Shape
}

// NewOnesOp creates a new OnesOp. The shape is copied.
func NewOnesOp(shape ndarray.Shape) *OnesOp {
	return &OnesOp{shape: shape.Clone()}
}

// Name returns "Ones".
func (op *OnesOp) Name() string { return "Ones" }

// Shape returns a copy of the output shape.
func (op *OnesOp) Shape() ndarray.Shape { return op.shape.Clone() }

// Compute returns ndarray.Ones(shape); inputs are ignored.
func (op *OnesOp) Compute(_ []*ndarray.Array, _ bool) *ndarray.Array {
	return ndarray.Ones(op.shape)
}
