package ndarray

import "github.com/born-ml/gradcore/internal/parallel"

// copyConfig drives the element gathers of axis swaps.
var copyConfig = parallel.DefaultConfig()

// ExpandDims returns a copy of x with a dimension of size 1 inserted at axis.
// Valid axes are 0..x.Rank() inclusive.
//
// Example:
//
//	x := ndarray.Zeros(ndarray.Shape{3, 4})
//	y := ndarray.ExpandDims(x, 1) // Shape: (3, 1, 4)
func ExpandDims(x *Array, axis int) *Array {
	if axis < 0 || axis > len(x.shape) {
		failf("ExpandDims: axis %d out of range for rank %d", axis, len(x.shape))
	}
	shape := make(Shape, 0, len(x.shape)+1)
	shape = append(shape, x.shape[:axis]...)
	shape = append(shape, 1)
	shape = append(shape, x.shape[axis:]...)

	out := newArray(shape)
	copy(out.data, x.data)
	return out
}

func (a *Array) checkAxis(op string, axis int) {
	if axis < 0 || axis >= len(a.shape) {
		failf("%s: axis %d out of range for shape %v", op, axis, a.shape)
	}
}

// SwapAxes exchanges axes i and j in place. The array gets a new row-major
// buffer; slices previously returned by Data no longer track it.
func (a *Array) SwapAxes(i, j int) {
	a.checkAxis("SwapAxes", i)
	a.checkAxis("SwapAxes", j)
	if i == j {
		return
	}

	rank := len(a.shape)
	outShape := a.shape.Clone()
	outShape[i], outShape[j] = outShape[j], outShape[i]

	// srcStrides[d] is the input stride of the axis landing at output position d.
	srcStrides := a.shape.ComputeStrides()
	srcStrides[i], srcStrides[j] = srcStrides[j], srcStrides[i]
	outStrides := outShape.ComputeStrides()

	src := a.data
	out := make([]float32, len(src))
	parallel.ForRange(len(out), func(lo, hi int) {
		for k := lo; k < hi; k++ {
			rem, off := k, 0
			for d := 0; d < rank; d++ {
				off += (rem / outStrides[d]) * srcStrides[d]
				rem %= outStrides[d]
			}
			out[k] = src[off]
		}
	}, copyConfig)

	a.shape = outShape
	a.data = out
}

// RollAxis moves axis from to position to, in place, through a sequence of
// adjacent axis swaps. All other axes keep their relative order, so
// RollAxis(x, from, to) undoes RollAxis(x, to, from).
//
// Example:
//
//	x := ndarray.Zeros(ndarray.Shape{2, 3, 4})
//	ndarray.RollAxis(x, 0, 2) // Shape: (4, 2, 3)
func RollAxis(x *Array, to, from int) {
	x.checkAxis("RollAxis", to)
	x.checkAxis("RollAxis", from)
	for j := from; j > to; j-- {
		x.SwapAxes(j-1, j)
	}
	for j := from; j < to; j++ {
		x.SwapAxes(j, j+1)
	}
}
