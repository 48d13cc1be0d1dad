package tensor

// Backend defines the numeric kernels the autodiff engine is built on.
// Backends own all shape checking: an incompatible operand pair yields an
// error wrapping ErrShapeMismatch and no result tensor.
//
// Every method except AddInPlace allocates a fresh result and leaves its
// operands untouched.
type Backend interface {
	// Name returns the backend name.
	Name() string

	// Element-wise operations; shapes must be identical, no broadcasting.
	Add(a, b *RawTensor) (*RawTensor, error)
	Mul(a, b *RawTensor) (*RawTensor, error)
	Neg(x *RawTensor) *RawTensor
	Scale(x *RawTensor, s float64) *RawTensor

	// MatMul multiplies 2-D tensors: (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) (*RawTensor, error)

	// Transpose swaps the two axes of a 2-D tensor.
	Transpose(x *RawTensor) (*RawTensor, error)

	// Sum reduces every element to a 0-D tensor.
	Sum(x *RawTensor) *RawTensor

	// AddInPlace performs dst += src.
	AddInPlace(dst, src *RawTensor) error
}
