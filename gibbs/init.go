package gibbs

import (
	"fmt"
	"math/rand/v2"

	"github.com/p2t2/figaro/factor"
)

// Default search budget for the random initializer.
const (
	defaultRestarts = 64
	defaultFlips    = 512
)

// RandomInitializer finds a feasible starting assignment by random restarts
// with greedy repair: draw a joint assignment of regular values, then, while
// some factor has zero weight, reassign one of that factor's variables at
// random. Exhausting the budget is fatal for the run (ErrInfeasible).
type RandomInitializer struct {
	rnd      *rand.Rand
	restarts int
	flips    int
}

// NewRandomInitializer returns the default initializer seeded for
// reproducible runs.
func NewRandomInitializer(seed uint64) *RandomInitializer {
	return &RandomInitializer{
		rnd:      rand.New(rand.NewPCG(seed, seed)),
		restarts: defaultRestarts,
		flips:    defaultFlips,
	}
}

// Initialize searches for one joint assignment giving every factor positive
// weight. Returns ErrInfeasible when the restart/flip budget is exhausted.
func (ri *RandomInitializer) Initialize(g *factor.Graph) (map[string]int, error) {
	vars := g.Variables()
	factors := g.Factors()

	for attempt := 0; attempt < ri.restarts; attempt++ {
		assignment := make(map[string]int, len(vars))
		for _, v := range vars {
			assignment[v.ID] = ri.draw(v)
		}
		if ri.repair(assignment, factors) {
			return assignment, nil
		}
	}

	return nil, fmt.Errorf("%w: budget exhausted after %d restarts", ErrInfeasible, ri.restarts)
}

// repair flips variables of violated factors until none remain or the flip
// budget runs out. Reports whether the assignment became feasible.
func (ri *RandomInitializer) repair(assignment map[string]int, factors []*factor.Factor) bool {
	for flip := 0; flip <= ri.flips; flip++ {
		violated := firstViolated(assignment, factors)
		if violated == nil {
			return true
		}
		vs := violated.Vars()
		v := vs[ri.rnd.IntN(len(vs))]
		assignment[v.ID] = ri.draw(v)
	}

	return false
}

// draw picks a uniform regular value from v's domain, falling back to the
// irregular marker only when the domain holds nothing else.
func (ri *RandomInitializer) draw(v *factor.Variable) int {
	if v.Irregular == factor.NoIrregular {
		return ri.rnd.IntN(v.Size)
	}
	if v.Size == 1 {
		return v.Irregular
	}
	val := ri.rnd.IntN(v.Size - 1)
	if val >= v.Irregular {
		val++
	}

	return val
}

// firstViolated returns the first factor whose value under the assignment is
// not positive, or nil when the assignment is feasible.
func firstViolated(assignment map[string]int, factors []*factor.Factor) *factor.Factor {
	for _, f := range factors {
		vs := f.Vars()
		buf := make([]int, len(vs))
		for i, v := range vs {
			buf[i] = assignment[v.ID]
		}
		if f.At(buf) <= 0 {
			return f
		}
	}

	return nil
}
