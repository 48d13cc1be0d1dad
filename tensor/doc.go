// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public array API for gradtensor.
//
// # Overview
//
// A RawTensor is a dense, row-major float64 array. This package provides:
//   - Shapes and strides (Shape)
//   - Creation helpers (Zeros, Ones, Full, Scalar, FromSlice)
//   - The Backend interface that compute backends implement
//   - Sentinel errors for shape problems
//
// Elementwise operations require identical shapes; there is no broadcasting.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gradtensor/backend/cpu"
//	    "github.com/born-ml/gradtensor/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Ones(tensor.Shape{2, 3})
//	    y := tensor.Full(tensor.Shape{3, 2}, 0.5)
//	    z, err := backend.MatMul(x, y)
//	    if errors.Is(err, tensor.ErrShapeMismatch) {
//	        // incompatible inner dimensions
//	    }
//	}
package tensor
