package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtensor/internal/tensor"
)

// NumericalGradient estimates d f / d x[index] with a forward difference:
//
//	(f(x + delta*e_index) - f(x)) / delta
//
// f must evaluate the function from the current contents of x, typically by
// rebuilding an untracked copy of the computation. x is restored before
// returning.
func NumericalGradient(f func() (float64, error), x *tensor.RawTensor, index int, delta float64) (float64, error) {
	if delta == 0 {
		return 0, errors.New("numerical gradient: delta must be non-zero")
	}
	data := x.Data()
	if index < 0 || index >= len(data) {
		return 0, errors.Errorf("numerical gradient: index %d out of range for %d elements", index, len(data))
	}

	base, err := f()
	if err != nil {
		return 0, errors.WithMessage(err, "numerical gradient: base evaluation")
	}

	orig := data[index]
	data[index] = orig + delta
	defer func() { data[index] = orig }()

	perturbed, err := f()
	if err != nil {
		return 0, errors.WithMessage(err, "numerical gradient: perturbed evaluation")
	}

	return (perturbed - base) / delta, nil
}
