// Command gradcheck builds L = sum(X @ W + B) from random inputs, runs the
// backward pass and compares one entry of W's gradient with a
// finite-difference estimate. With -steps it then runs SGD on W and B.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/born-ml/gradtensor/autodiff"
)

func main() {
	cfg := defaultConfig()
	var strategy, level string

	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the input tensors")
	flag.IntVar(&cfg.Batch, "batch", cfg.Batch, "rows of X")
	flag.IntVar(&cfg.In, "in", cfg.In, "columns of X / rows of W")
	flag.IntVar(&cfg.Out, "out", cfg.Out, "columns of W")
	flag.IntVar(&cfg.Row, "row", cfg.Row, "row of the checked W entry")
	flag.IntVar(&cfg.Col, "col", cfg.Col, "column of the checked W entry")
	flag.Float64Var(&cfg.Delta, "delta", cfg.Delta, "finite-difference step")
	flag.Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "allowed |analytic - numerical|")
	flag.IntVar(&cfg.Steps, "steps", cfg.Steps, "SGD steps to run on W and B after the check")
	flag.Float64Var(&cfg.LR, "lr", cfg.LR, "SGD learning rate")
	flag.StringVar(&strategy, "strategy", cfg.Backward.Strategy.String(), "backward strategy: recursive or topological")
	flag.StringVar(&level, "log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		fmt.Fprintf(os.Stderr, "gradcheck: %v\n", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	s, err := autodiff.ParseStrategy(strategy)
	if err != nil {
		logger.Error("invalid flag", "err", err)
		os.Exit(2)
	}
	cfg.Backward.Strategy = s

	res, err := run(cfg, logger)
	if err != nil {
		logger.Error("gradient check failed", "err", err)
		os.Exit(1)
	}
	fmt.Printf("numerical: %.8f, analytic: %.8f\n", res.Numerical, res.Analytic)
	if n := len(res.Descent); n > 0 {
		fmt.Printf("loss after %d sgd steps: %.8f -> %.8f\n", n, res.Descent[0], res.Descent[n-1])
	}
}
