// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU backend for gradtensor.
//
// # Overview
//
// Kernels are delegated to gonum: elementwise operations use
// gonum/floats and matrix multiplication uses BLAS dgemm through
// gonum/blas/blas64.
//
// # Thread Safety
//
// The backend itself holds no state and may be shared. Tensors are not
// safe for concurrent mutation.
package cpu
