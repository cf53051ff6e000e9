package order

import (
	"math/rand"

	"github.com/vhaisman/boolexpr/internal/ast"
)

// Random shuffles the variable list with math/rand seeded by Seed, giving a
// deterministic result for a fixed seed and current list — useful as one of
// the diverse candidates Auto compares.
type Random struct {
	Seed int64
}

func (r Random) Order(_ ast.Node, current []string) ([]string, error) {
	out := append([]string(nil), current...)
	rng := rand.New(rand.NewSource(r.Seed))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out, nil
}
