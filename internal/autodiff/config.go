package autodiff

import (
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects how Backward distributes gradients through the graph.
type Strategy int

const (
	// Recursive follows every edge independently. A tensor reached by k
	// paths is visited k times and accumulates k contributions.
	Recursive Strategy = iota

	// Topological orders the graph once and visits each tensor a single
	// time, after summing all of its incoming contributions.
	Topological
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Topological:
		return "topological"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name as printed by String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "recursive":
		return Recursive, nil
	case "topological", "topo":
		return Topological, nil
	default:
		return 0, errors.Errorf("unknown backward strategy %q", name)
	}
}

// Config controls the backward pass.
type Config struct {
	Strategy Strategy
}

// DefaultConfig returns the recursive strategy.
func DefaultConfig() Config {
	return Config{Strategy: Recursive}
}
