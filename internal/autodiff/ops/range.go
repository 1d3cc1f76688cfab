package ops

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradcore/internal/ndarray"
)

// RangeOp produces the rank-1 sequence start, start+step, ... up to end (exclusive).
type RangeOp struct {
	SourceOp
	start, end, step float32
}

// NewRangeOp creates a new RangeOp.
func NewRangeOp(start, end, step float32) *RangeOp {
	return &RangeOp{start: start, end: end, step: step}
}

// Name returns "Range".
func (op *RangeOp) Name() string { return "Range" }

// Compute returns ndarray.Arange(start, end, step); inputs are ignored.
func (op *RangeOp) Compute(_ []*ndarray.Array, _ bool) *ndarray.Array {
	return ndarray.Arange(op.start, op.end, op.step)
}

// RangeDynamicOp is RangeOp with its bounds supplied at compute time by three
// one-element inputs: [start, end, step].
type RangeDynamicOp struct {
	SourceOp
}

// NewRangeDynamicOp creates a new RangeDynamicOp.
func NewRangeDynamicOp() *RangeDynamicOp {
	return &RangeDynamicOp{}
}

// Name returns "RangeDynamic".
func (op *RangeDynamicOp) Name() string { return "RangeDynamic" }

// Compute reads start, end and step from xs and returns the sequence.
// Panics unless xs holds exactly three arrays of one element each.
func (op *RangeDynamicOp) Compute(xs []*ndarray.Array, _ bool) *ndarray.Array {
	if len(xs) != 3 {
		panic(errors.Wrapf(ndarray.ErrInvalidArgument,
			"RangeDynamic: expected 3 inputs (start, end, step), got %d", len(xs)))
	}
	var bounds [3]float32
	for i, x := range xs {
		if x.Len() != 1 {
			panic(errors.Wrapf(ndarray.ErrInvalidArgument,
				"RangeDynamic: input %d must have exactly one element, got shape %v", i, x.Shape()))
		}
		bounds[i] = x.Data()[0]
	}
	return ndarray.Arange(bounds[0], bounds[1], bounds[2])
}
