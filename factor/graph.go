package factor

import (
	"fmt"
	"sort"
)

// Graph is the build-once container for a factor graph: every variable and
// every factor of one model, registered during construction and immutable
// for the lifetime of a sampling run.
type Graph struct {
	vars     map[string]*Variable
	factors  []*Factor
	touching map[string][]*Factor
}

// NewGraph returns an empty factor graph.
func NewGraph() *Graph {
	return &Graph{
		vars:     make(map[string]*Variable),
		touching: make(map[string][]*Factor),
	}
}

// AddVariable registers v. Returns ErrNilVariable, ErrEmptyVariableID,
// ErrBadDomain, or ErrDuplicateVariable on invalid input.
func (g *Graph) AddVariable(v *Variable) error {
	if v == nil {
		return ErrNilVariable
	}
	if v.ID == "" {
		return ErrEmptyVariableID
	}
	if v.Size < 1 {
		return fmt.Errorf("%w: variable %q has size %d", ErrBadDomain, v.ID, v.Size)
	}
	if v.Irregular != NoIrregular && (v.Irregular < 0 || v.Irregular >= v.Size) {
		return fmt.Errorf("%w: variable %q irregular index %d outside [0,%d)", ErrBadDomain, v.ID, v.Irregular, v.Size)
	}
	if _, exists := g.vars[v.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVariable, v.ID)
	}
	g.vars[v.ID] = v

	return nil
}

// AddFactor registers f. Every variable in f's tuple must already be
// registered; returns ErrNilFactor or ErrVariableNotFound otherwise.
func (g *Graph) AddFactor(f *Factor) error {
	if f == nil {
		return ErrNilFactor
	}
	for _, v := range f.vars {
		if _, ok := g.vars[v.ID]; !ok {
			return fmt.Errorf("%w: factor references %q", ErrVariableNotFound, v.ID)
		}
	}
	g.factors = append(g.factors, f)
	for _, v := range f.vars {
		g.touching[v.ID] = append(g.touching[v.ID], f)
	}

	return nil
}

// Variable returns the registered variable with the given ID.
func (g *Graph) Variable(id string) (*Variable, bool) {
	v, ok := g.vars[id]

	return v, ok
}

// HasVariable reports whether id is registered.
func (g *Graph) HasVariable(id string) bool {
	_, ok := g.vars[id]

	return ok
}

// Variables returns every registered variable, sorted by ID so that callers
// iterating the graph are deterministic.
func (g *Graph) Variables() []*Variable {
	vs := make([]*Variable, 0, len(g.vars))
	for _, v := range g.vars {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].ID < vs[j].ID })

	return vs
}

// Factors returns every registered factor, in registration order.
func (g *Graph) Factors() []*Factor {
	return append([]*Factor(nil), g.factors...)
}

// Touching returns the factors whose tuple includes the variable with the
// given ID, in registration order.
func (g *Graph) Touching(id string) []*Factor {
	return append([]*Factor(nil), g.touching[id]...)
}

// NumVariables returns the number of registered variables.
func (g *Graph) NumVariables() int { return len(g.vars) }

// NumFactors returns the number of registered factors.
func (g *Graph) NumFactors() int { return len(g.factors) }
