package cpu

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/born-ml/gradtensor/internal/tensor"
)

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N), computed with BLAS dgemm.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		return nil, errors.Wrapf(tensor.ErrInvalidShape,
			"matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]

	if k != kAlt {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "matmul: [%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}

	result := tensor.Zeros(tensor.Shape{m, n})
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		general(a), general(b),
		0, general(result))

	return result, nil
}

// Transpose swaps the axes of a 2-D tensor, copying the data.
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	shape := x.Shape()
	if len(shape) != 2 {
		return nil, errors.Wrapf(tensor.ErrInvalidShape, "transpose: only 2D tensors supported, got %dD", len(shape))
	}

	rows, cols := shape[0], shape[1]
	result := tensor.Zeros(tensor.Shape{cols, rows})
	src, dst := x.Data(), result.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
	return result, nil
}

// general views a row-major 2-D tensor as a BLAS matrix without copying.
func general(t *tensor.RawTensor) blas64.General {
	shape := t.Shape()
	return blas64.General{
		Rows:   shape[0],
		Cols:   shape[1],
		Stride: shape[1],
		Data:   t.Data(),
	}
}
