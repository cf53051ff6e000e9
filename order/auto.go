package order

import (
	"golang.org/x/sync/errgroup"

	"github.com/vhaisman/boolexpr/bdd"
	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/rewrite"
)

const (
	autoParallelThreshold = 40
	autoSiftThreshold     = 60
)

// Auto picks the best of several cheap candidate orders. For 40 variables
// or fewer it runs Alphabetical, Frequency and a seeded Random in parallel
// — each building its own throwaway BDD manager, so the non-thread-safe
// managers never leak across goroutines — measures the resulting node
// count for each, and keeps the smallest. For larger inputs, building three
// candidate BDDs in parallel stops being cheap, so it falls back to
// Frequency alone. Either way, if the variable count is 60 or fewer, the
// chosen order is refined once more with Sifting.
type Auto struct {
	RandomSeed int64
}

func (a Auto) Order(root ast.Node, current []string) ([]string, error) {
	n := len(current)

	var chosen []string
	if n <= autoParallelThreshold {
		candidates := []Strategy{Alphabetical{}, Frequency{}, Random{Seed: a.RandomSeed}}
		orders := make([][]string, len(candidates))
		counts := make([]int, len(candidates))

		var g errgroup.Group
		for i, strat := range candidates {
			i, strat := i, strat
			g.Go(func() error {
				candidateOrder, err := strat.Order(root, current)
				if err != nil {
					return err
				}
				indexed, err := rewrite.VariableIndex(root, candidateOrder)
				if err != nil {
					return err
				}
				m := bdd.NewManager(n)
				r, err := bdd.Build(m, indexed)
				if err != nil {
					return err
				}
				orders[i] = candidateOrder
				counts[i] = m.NodeCount(r)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		best := 0
		for i := 1; i < len(counts); i++ {
			if counts[i] < counts[best] {
				best = i
			}
		}
		chosen = orders[best]
	} else {
		var err error
		chosen, err = Frequency{}.Order(root, current)
		if err != nil {
			return nil, err
		}
	}

	if n <= autoSiftThreshold {
		return Sifting{}.Order(root, chosen)
	}
	return chosen, nil
}
