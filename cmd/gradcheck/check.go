package main

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/born-ml/gradtensor/autodiff"
	"github.com/born-ml/gradtensor/optim"
	"github.com/born-ml/gradtensor/tensor"
)

// config controls one gradient check.
type config struct {
	Seed      uint64
	Batch     int // rows of X
	In        int // columns of X, rows of W
	Out       int // columns of W
	Row, Col  int // W entry to check
	Delta     float64
	Tolerance float64
	Backward  autodiff.Config
	Steps     int     // SGD steps on W and B after the check
	LR        float64 // SGD learning rate
}

func defaultConfig() config {
	return config{
		Seed:      42,
		Batch:     2,
		In:        3,
		Out:       2,
		Delta:     1e-6,
		Tolerance: 1e-4,
		Backward:  autodiff.DefaultConfig(),
		LR:        0.01,
	}
}

// result is the outcome of a gradient check.
type result struct {
	Loss      float64
	Analytic  float64
	Numerical float64
	Descent   []float64 // loss before each SGD step
}

// errGradientMismatch is returned when the analytic and numerical
// gradients differ by more than the tolerance.
var errGradientMismatch = errors.New("gradient mismatch")

func run(cfg config, logger *slog.Logger) (result, error) {
	if cfg.Row < 0 || cfg.Row >= cfg.In || cfg.Col < 0 || cfg.Col >= cfg.Out {
		return result{}, errors.Errorf("entry (%d,%d) outside W of shape [%d %d]", cfg.Row, cfg.Col, cfg.In, cfg.Out)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	x, err := randomTensor(rng, tensor.Shape{cfg.Batch, cfg.In}, false)
	if err != nil {
		return result{}, err
	}
	w, err := randomTensor(rng, tensor.Shape{cfg.In, cfg.Out}, true)
	if err != nil {
		return result{}, err
	}
	b, err := randomTensor(rng, tensor.Shape{cfg.Batch, cfg.Out}, true)
	if err != nil {
		return result{}, err
	}
	logger.Info("inputs", "x", x, "w", w, "b", b)

	loss, err := affine(x, w, b, logger)
	if err != nil {
		return result{}, err
	}
	logger.Debug("graph\n" + autodiff.FormatGraph(loss))

	if err := loss.BackwardWithConfig(nil, cfg.Backward); err != nil {
		return result{}, errors.WithMessage(err, "backward")
	}
	logger.Info("backward done", "strategy", cfg.Backward.Strategy, "w.grad", w.Grad(), "b.grad", b.Grad())

	// Untracked copies of the same computation, one entry of W perturbed.
	wCopy := autodiff.New(w.Raw().Clone(), false)
	xCopy := autodiff.New(x.Raw().Clone(), false)
	bCopy := autodiff.New(b.Raw().Clone(), false)
	f := func() (float64, error) {
		l, err := affine(xCopy, wCopy, bCopy, nil)
		if err != nil {
			return 0, err
		}
		return l.Item(), nil
	}

	index := cfg.Row*cfg.Out + cfg.Col
	numerical, err := autodiff.NumericalGradient(f, wCopy.Raw(), index, cfg.Delta)
	if err != nil {
		return result{}, err
	}

	res := result{
		Loss:      loss.Item(),
		Analytic:  w.Grad().Raw().At(cfg.Row, cfg.Col),
		Numerical: numerical,
	}
	logger.Info("gradient check", "entry", []int{cfg.Row, cfg.Col},
		"analytic", res.Analytic, "numerical", res.Numerical)

	if diff := math.Abs(res.Analytic - res.Numerical); diff > cfg.Tolerance {
		return res, errors.Wrapf(errGradientMismatch, "|%g - %g| = %g > %g",
			res.Analytic, res.Numerical, diff, cfg.Tolerance)
	}

	if cfg.Steps > 0 {
		res.Descent, err = descend(cfg, x, w, b, logger)
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

// descend runs SGD on w and b, rebuilding the graph each step.
// The gradients from the check are cleared first.
func descend(cfg config, x, w, b *autodiff.Tensor, logger *slog.Logger) ([]float64, error) {
	sgd, err := optim.NewSGD([]*autodiff.Tensor{w, b}, optim.SGDConfig{LR: cfg.LR})
	if err != nil {
		return nil, err
	}
	if err := sgd.ZeroGrad(); err != nil {
		return nil, err
	}

	losses := make([]float64, 0, cfg.Steps)
	for step := 0; step < cfg.Steps; step++ {
		loss, err := affine(x, w, b, nil)
		if err != nil {
			return nil, err
		}
		if err := loss.BackwardWithConfig(nil, cfg.Backward); err != nil {
			return nil, errors.WithMessagef(err, "step %d", step)
		}
		if err := sgd.Step(); err != nil {
			return nil, err
		}
		if err := sgd.ZeroGrad(); err != nil {
			return nil, err
		}
		losses = append(losses, loss.Item())
		logger.Debug("sgd step", "step", step, "loss", loss.Item())
	}
	return losses, nil
}

// affine returns sum(x @ w + b), logging intermediates when logger is set.
func affine(x, w, b *autodiff.Tensor, logger *slog.Logger) (*autodiff.Tensor, error) {
	xw, err := autodiff.MatMul(x, w)
	if err != nil {
		return nil, err
	}
	z, err := autodiff.Add(xw, b)
	if err != nil {
		return nil, err
	}
	loss, err := autodiff.Sum(z)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Info("forward", "matmul", xw, "with_bias", z, "loss", loss)
	}
	return loss, nil
}

// randomTensor fills a tensor with uniform values in [0, 1).
func randomTensor(rng *rand.Rand, shape tensor.Shape, requiresGrad bool) (*autodiff.Tensor, error) {
	raw, err := tensor.NewRaw(shape)
	if err != nil {
		return nil, err
	}
	data := raw.Data()
	for i := range data {
		data[i] = rng.Float64()
	}
	return autodiff.New(raw, requiresGrad), nil
}
