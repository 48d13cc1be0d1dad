package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradtensor/internal/autodiff"
	"github.com/born-ml/gradtensor/internal/tensor"
)

func TestNew_RequiresGradAllocatesZeroGrad(t *testing.T) {
	x := newTensor(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, true)

	require.NotNil(t, x.Grad())
	assert.True(t, x.RequiresGrad())
	assert.Equal(t, tensor.Shape{2, 3}, x.Grad().Shape())
	assert.Equal(t, make([]float64, 6), x.Grad().Data())
	assert.False(t, x.Grad().RequiresGrad(), "a gradient is never itself tracked")
}

func TestNew_NoGrad(t *testing.T) {
	x := newTensor(t, []float64{1, 2}, tensor.Shape{2}, false)

	assert.False(t, x.RequiresGrad())
	assert.Nil(t, x.Grad())
}

func TestNew_LeafInvariant(t *testing.T) {
	for _, requiresGrad := range []bool{true, false} {
		x := autodiff.New(tensor.Ones(tensor.Shape{2, 2}), requiresGrad)
		assert.Empty(t, x.Dependencies())
		assert.True(t, x.IsLeaf())
	}
}

func TestFromSlice_InvalidShape(t *testing.T) {
	_, err := autodiff.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 2}, true)
	require.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestTensor_Accessors(t *testing.T) {
	raw := tensor.MustFromSlice([]float64{1, 2}, tensor.Shape{2})
	x := autodiff.New(raw, false)

	assert.Same(t, raw, x.Raw())
	assert.Equal(t, []float64{1, 2}, x.Data())
	assert.Equal(t, "CPU", x.Backend().Name())

	s := autodiff.New(tensor.Scalar(3), false)
	assert.Equal(t, 3.0, s.Item())
}

func TestZeroGrad_RequiresGrad(t *testing.T) {
	x := newTensor(t, []float64{1, 2}, tensor.Shape{2}, false)

	err := x.ZeroGrad()
	require.ErrorIs(t, err, autodiff.ErrInvalidOperation)
	assert.Nil(t, x.Grad())
}

func TestZeroGrad_FreshBuffer(t *testing.T) {
	x := newTensor(t, []float64{1, 2}, tensor.Shape{2}, true)
	loss, err := x.Sum()
	require.NoError(t, err)
	require.NoError(t, loss.Backward(nil))

	old := x.Grad()
	require.NoError(t, x.ZeroGrad())

	assert.NotSame(t, old, x.Grad())
	assert.Equal(t, []float64{0, 0}, x.Grad().Data())
	assert.Equal(t, []float64{1, 1}, old.Data(), "zeroing must not touch the previous gradient buffer")
}

func TestDetach(t *testing.T) {
	x := newTensor(t, []float64{1, 2}, tensor.Shape{2}, true)
	d := x.Detach()

	assert.False(t, d.RequiresGrad())
	assert.Nil(t, d.Grad())
	assert.Same(t, x.Raw(), d.Raw(), "detach shares data")

	y, err := autodiff.Mul(d, d)
	require.NoError(t, err)
	assert.False(t, y.RequiresGrad())
}

func TestTensor_String(t *testing.T) {
	x := newTensor(t, []float64{1, 2}, tensor.Shape{2}, false)
	assert.Equal(t, "Tensor([1 2])", x.String())

	w := newTensor(t, []float64{1, 2}, tensor.Shape{2}, true)
	assert.Equal(t, "Tensor([1 2], requires_grad=true, deps=0)", w.String())

	y, err := autodiff.Add(w, w)
	require.NoError(t, err)
	assert.Equal(t, "Tensor([2 4], requires_grad=true, deps=2)", y.String())
}

func TestDependency_String(t *testing.T) {
	x := newTensor(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, false)
	w := newTensor(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2}, true)

	y, err := autodiff.MatMul(x, w)
	require.NoError(t, err)

	deps := y.Dependencies()
	require.Len(t, deps, 1)
	assert.Equal(t, "Dependency(op=matmul, fn=matmul/right, input=Tensor[3 2] requires_grad)", deps[0].String())
}

func TestStrategy_Parse(t *testing.T) {
	for _, s := range strategies {
		parsed, err := autodiff.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	parsed, err := autodiff.ParseStrategy("TOPO")
	require.NoError(t, err)
	assert.Equal(t, autodiff.Topological, parsed)

	_, err = autodiff.ParseStrategy("bfs")
	require.Error(t, err)

	assert.Equal(t, autodiff.Recursive, autodiff.DefaultConfig().Strategy)
}
