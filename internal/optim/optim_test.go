package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradtensor/internal/autodiff"
	"github.com/born-ml/gradtensor/internal/tensor"
)

// quadratic builds L = sum(w * w), minimized at w = 0 with dL/dw = 2w.
func quadratic(t *testing.T, w *autodiff.Tensor) *autodiff.Tensor {
	t.Helper()
	sq, err := autodiff.Mul(w, w)
	require.NoError(t, err)
	loss, err := autodiff.Sum(sq)
	require.NoError(t, err)
	return loss
}

func TestSGD_Step(t *testing.T) {
	w := autodiff.New(tensor.MustFromSlice([]float64{1, -2}, tensor.Shape{2}), true)
	sgd, err := NewSGD([]*autodiff.Tensor{w}, SGDConfig{LR: 0.1})
	require.NoError(t, err)

	require.NoError(t, quadratic(t, w).Backward(nil))
	require.NoError(t, sgd.Step())

	// w - 0.1 * 2w = 0.8w
	assert.InDeltaSlice(t, []float64{0.8, -1.6}, w.Data(), 1e-12)
}

func TestSGD_Converges(t *testing.T) {
	w := autodiff.New(tensor.MustFromSlice([]float64{3, -1, 0.5}, tensor.Shape{3}), true)
	sgd, err := NewSGD([]*autodiff.Tensor{w}, SGDConfig{LR: 0.1, Momentum: 0.5})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		loss := quadratic(t, w)
		require.NoError(t, loss.Backward(nil))
		require.NoError(t, sgd.Step())
		require.NoError(t, sgd.ZeroGrad())
	}
	assert.Less(t, quadratic(t, w).Item(), 1e-6)
	assert.Equal(t, []float64{0, 0, 0}, w.Grad().Data())
}

func TestSGD_Momentum(t *testing.T) {
	w := autodiff.New(tensor.MustFromSlice([]float64{1}, tensor.Shape{1}), true)
	sgd, err := NewSGD([]*autodiff.Tensor{w}, SGDConfig{LR: 0.1, Momentum: 0.9})
	require.NoError(t, err)

	// Constant gradient of 1 via L = sum(w).
	for i := 0; i < 2; i++ {
		loss, err := autodiff.Sum(w)
		require.NoError(t, err)
		require.NoError(t, loss.Backward(nil))
		require.NoError(t, sgd.Step())
		require.NoError(t, sgd.ZeroGrad())
	}

	// v1 = 1, w = 0.9; v2 = 1.9, w = 0.71
	assert.InDelta(t, 0.71, w.Data()[0], 1e-12)
}

func TestNewSGD_Validation(t *testing.T) {
	frozen := autodiff.New(tensor.Ones(tensor.Shape{2}), false)
	_, err := NewSGD([]*autodiff.Tensor{frozen}, SGDConfig{})
	require.ErrorIs(t, err, autodiff.ErrInvalidOperation)

	w := autodiff.New(tensor.Ones(tensor.Shape{2}), true)
	_, err = NewSGD([]*autodiff.Tensor{w}, SGDConfig{Momentum: 1})
	require.Error(t, err)

	sgd, err := NewSGD([]*autodiff.Tensor{w}, SGDConfig{})
	require.NoError(t, err)
	assert.Equal(t, 0.01, sgd.LR())
	sgd.SetLR(0.5)
	assert.Equal(t, 0.5, sgd.LR())
}
