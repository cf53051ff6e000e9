package order

import "github.com/vhaisman/boolexpr/internal/ast"

// Composite chains strategies in sequence, feeding each one's output order
// as the next one's current order.
type Composite struct {
	Strategies []Strategy
}

func (c Composite) Order(root ast.Node, current []string) ([]string, error) {
	out := current
	for _, s := range c.Strategies {
		var err error
		out, err = s.Order(root, out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
