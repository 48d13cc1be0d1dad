package tensor

import "gonum.org/v1/gonum/floats"

// Zeros creates a tensor filled with zeros.
// Panics on an invalid shape.
//
// Example:
//
//	t := tensor.Zeros(Shape{3, 4})
func Zeros(shape Shape) *RawTensor {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return raw
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *RawTensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) *RawTensor {
	t := Zeros(shape)
	if value != 0 {
		floats.AddConst(value, t.data)
	}
	return t
}

// Scalar creates a 0-D tensor holding value.
func Scalar(value float64) *RawTensor {
	return Full(Shape{}, value)
}

// ZerosLike creates a zero tensor with the same shape as t.
func ZerosLike(t *RawTensor) *RawTensor {
	return Zeros(t.shape)
}

// OnesLike creates a tensor of ones with the same shape as t.
func OnesLike(t *RawTensor) *RawTensor {
	return Ones(t.shape)
}
