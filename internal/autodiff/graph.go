package autodiff

import (
	"fmt"
	"strings"
)

// FormatGraph renders the dependency graph below root as an indented tree,
// one line per edge. Tensors reached by several paths are printed once per
// path.
//
//	Tensor[] requires_grad
//	  sum/left <- Tensor[2 2] requires_grad
//	    add/left <- Tensor[2 2] requires_grad
//	    ...
func FormatGraph(root *Tensor) string {
	var sb strings.Builder
	sb.WriteString(root.header())
	sb.WriteByte('\n')
	formatEdges(&sb, root, 1)
	return sb.String()
}

func formatEdges(sb *strings.Builder, t *Tensor, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, dep := range t.deps {
		fmt.Fprintf(sb, "%s%s <- %s\n", indent, dep.Fn, dep.Input.header())
		formatEdges(sb, dep.Input, depth+1)
	}
}
