package ops

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/gradcore/internal/ndarray"
)

// TryCompute runs op.Compute and converts a fail-fast precondition violation
// into an error, so an executor can isolate the failing node instead of
// aborting the whole evaluation.
func TryCompute(op Op, xs []*ndarray.Array, training bool) (*ndarray.Array, error) {
	klog.V(2).Infof("ops: compute %s (%d inputs, training=%v)", op.Name(), len(xs), training)
	y, err := ndarray.Try(func() *ndarray.Array { return op.Compute(xs, training) })
	if err != nil {
		return nil, errors.WithMessagef(err, "op %s", op.Name())
	}
	return y, nil
}

// TryGrad runs op.Grad and checks the arity of the result: it must be empty
// for ops without inputs and hold exactly one entry per input otherwise.
func TryGrad(op Op, y Tensor, xs []Tensor, gy Tensor) ([]Tensor, error) {
	klog.V(2).Infof("ops: grad %s (%d inputs)", op.Name(), len(xs))
	grads, err := ndarray.Try(func() []Tensor { return op.Grad(y, xs, gy) })
	if err != nil {
		return nil, errors.WithMessagef(err, "op %s", op.Name())
	}
	if len(grads) != len(xs) {
		return nil, errors.Errorf("op %s: Grad returned %d gradients for %d inputs", op.Name(), len(grads), len(xs))
	}
	return grads, nil
}
