package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradtensor/internal/autodiff"
	"github.com/born-ml/gradtensor/internal/tensor"
)

// TestNumericalGradient_Affine checks every entry of W.grad for
// L = sum(X @ W + B) against a forward difference on an untracked copy.
func TestNumericalGradient_Affine(t *testing.T) {
	const delta = 1e-6

	xData := []float64{0.3, 0.8, 0.1, 0.5, 0.9, 0.2}
	wData := []float64{0.7, 0.4, 0.6, 0.1, 0.2, 0.9}
	bData := []float64{0.05, 0.15, 0.25, 0.35}

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			x := newTensor(t, xData, tensor.Shape{2, 3}, false)
			w := newTensor(t, wData, tensor.Shape{3, 2}, true)
			b := newTensor(t, bData, tensor.Shape{2, 2}, true)

			loss := affineLoss(t, x, w, b)
			require.NoError(t, loss.BackwardWithConfig(nil, autodiff.Config{Strategy: s}))

			// Untracked copy of the same computation.
			wCopy := autodiff.New(w.Raw().Clone(), false)
			f := func() (float64, error) {
				l, err := autodiff.Sum(mustAffine(t, x, wCopy, b.Detach()))
				if err != nil {
					return 0, err
				}
				return l.Item(), nil
			}

			for i := range wData {
				numerical, err := autodiff.NumericalGradient(f, wCopy.Raw(), i, delta)
				require.NoError(t, err)
				assert.InDelta(t, w.Grad().Data()[i], numerical, 1e-4, "W.grad[%d]", i)
			}
			assert.Equal(t, wData, wCopy.Data(), "perturbation must be restored")
		})
	}
}

// TestNumericalGradient_Square checks f(x) = sum(x*x), df/dx = 2x.
func TestNumericalGradient_Square(t *testing.T) {
	const delta = 1e-7

	x := newTensor(t, []float64{3, -1.5, 0.25}, tensor.Shape{3}, true)
	sq, err := autodiff.Mul(x, x)
	require.NoError(t, err)
	loss, err := autodiff.Sum(sq)
	require.NoError(t, err)
	require.NoError(t, loss.Backward(nil))

	plain := x.Detach()
	f := func() (float64, error) {
		y, err := autodiff.Mul(plain, plain)
		if err != nil {
			return 0, err
		}
		l, err := autodiff.Sum(y)
		if err != nil {
			return 0, err
		}
		return l.Item(), nil
	}

	for i, v := range []float64{3, -1.5, 0.25} {
		numerical, err := autodiff.NumericalGradient(f, plain.Raw(), i, delta)
		require.NoError(t, err)
		assert.InDelta(t, 2*v, x.Grad().Data()[i], 1e-12)
		assert.InDelta(t, x.Grad().Data()[i], numerical, 1e-4)
	}
}

func TestNumericalGradient_Errors(t *testing.T) {
	raw := tensor.Zeros(tensor.Shape{2})
	f := func() (float64, error) { return 0, nil }

	_, err := autodiff.NumericalGradient(f, raw, 0, 0)
	require.Error(t, err)

	_, err = autodiff.NumericalGradient(f, raw, 2, 1e-6)
	require.Error(t, err)

	_, err = autodiff.NumericalGradient(func() (float64, error) {
		return math.NaN(), tensor.ErrShapeMismatch
	}, raw, 0, 1e-6)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func mustAffine(t *testing.T, x, w, b *autodiff.Tensor) *autodiff.Tensor {
	t.Helper()
	xw, err := autodiff.MatMul(x, w)
	require.NoError(t, err)
	z, err := autodiff.Add(xw, b)
	require.NoError(t, err)
	return z
}
