package order

import (
	"github.com/vhaisman/boolexpr/bdd"
	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/rewrite"
)

// Sifting builds root into a throwaway BDD manager under the caller's
// current order, runs Rudell's sifting algorithm to convergence, and reads
// the resulting level assignment back out as a variable-name order.
type Sifting struct{}

func (Sifting) Order(root ast.Node, current []string) ([]string, error) {
	indexed, err := rewrite.VariableIndex(root, current)
	if err != nil {
		return nil, err
	}
	m := bdd.NewManager(len(current))
	r, err := bdd.Build(m, indexed)
	if err != nil {
		return nil, err
	}
	m.SiftAll([]bdd.Ref{r})

	out := make([]string, len(current))
	for level := 0; level < len(current); level++ {
		out[level] = current[m.VariableAt(int32(level))]
	}
	return out, nil
}
