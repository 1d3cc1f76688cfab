package ndarray

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrInvalidArgument is the root of every precondition violation raised by this
// package: malformed shapes, out-of-range axes and invalid distribution parameters.
var ErrInvalidArgument = errors.New("invalid argument")

// failf aborts the current call with an ErrInvalidArgument carrying a stack trace.
// Callers that need a recoverable result wrap the call in Try.
func failf(format string, args ...any) {
	panic(errors.Wrapf(ErrInvalidArgument, format, args...))
}

// Try runs fn and converts a fail-fast precondition violation into an error.
// Panics that are not errors are re-raised untouched.
//
// Example:
//
//	w, err := ndarray.Try(func() *ndarray.Array { return ndarray.GlorotUniform(shape) })
func Try[T any](fn func() T) (result T, err error) {
	err = exceptions.TryCatch[error](func() { result = fn() })
	if err != nil {
		klog.V(1).Infof("ndarray: caught precondition violation: %v", err)
		var zero T
		return zero, err
	}
	return result, nil
}

// IsInvalidArgument reports whether err was produced by a precondition violation.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
