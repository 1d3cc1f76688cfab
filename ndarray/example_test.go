// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"fmt"

	"github.com/born-ml/gradcore/ndarray"
)

func ExampleZeros() {
	z := ndarray.Zeros(ndarray.Shape{2, 3})
	fmt.Println(z.Shape(), z.Data())
	// Output: (2, 3) [0 0 0 0 0 0]
}

func ExampleArange() {
	fmt.Println(ndarray.Arange(0, 5, 1).Data())
	// Output: [0 1 2 3 4]
}

func ExampleExpandDims() {
	x := ndarray.Zeros(ndarray.Shape{3, 4})
	fmt.Println(ndarray.ExpandDims(x, 1).Shape())
	// Output: (3, 1, 4)
}

func ExampleRollAxis() {
	x := ndarray.Zeros(ndarray.Shape{2, 3, 4})
	ndarray.RollAxis(x, 0, 2)
	fmt.Println(x.Shape())
	// Output: (4, 2, 3)
}

func ExampleTry() {
	_, err := ndarray.Try(func() *ndarray.Array {
		return ndarray.GlorotUniform(ndarray.Shape{10})
	})
	fmt.Println(ndarray.IsInvalidArgument(err))
	// Output: true
}

func ExampleTrySample() {
	_, err := ndarray.TrySample(ndarray.Shape{4}, ndarray.Bernoulli{P: 2})
	fmt.Println(err != nil)
	// Output: true
}
