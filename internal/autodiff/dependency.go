package autodiff

import (
	"fmt"

	"github.com/born-ml/gradtensor/internal/autodiff/ops"
)

// Dependency is a backward edge from an operation's output to one of its
// inputs. Input is referenced, not owned: callers may hold it too.
type Dependency struct {
	Op    ops.Kind   // producing operation, diagnostics only
	Input *Tensor    // upstream operand
	Fn    ops.GradFn // maps d(output) to d(Input)
}

// String returns a human-readable representation of the edge.
func (d Dependency) String() string {
	return fmt.Sprintf("Dependency(op=%s, fn=%s, input=%s)", d.Op, d.Fn, d.Input.header())
}
