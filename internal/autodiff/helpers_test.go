package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradtensor/internal/autodiff"
	"github.com/born-ml/gradtensor/internal/tensor"
)

// strategies lists every backward strategy; gradient tests run under each.
var strategies = []autodiff.Strategy{autodiff.Recursive, autodiff.Topological}

func newTensor(t *testing.T, data []float64, shape tensor.Shape, requiresGrad bool) *autodiff.Tensor {
	t.Helper()
	x, err := autodiff.FromSlice(data, shape, requiresGrad)
	require.NoError(t, err)
	return x
}

// affineLoss builds L = sum(x @ w + b).
func affineLoss(t *testing.T, x, w, b *autodiff.Tensor) *autodiff.Tensor {
	t.Helper()
	xw, err := autodiff.MatMul(x, w)
	require.NoError(t, err)
	z, err := autodiff.Add(xw, b)
	require.NoError(t, err)
	loss, err := autodiff.Sum(z)
	require.NoError(t, err)
	return loss
}
