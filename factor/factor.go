package factor

import "fmt"

// Factor is one local potential: an ordered tuple of variables plus a dense
// row-major table holding one numeric value per joint assignment of the
// variables' domains. The last variable varies fastest.
//
// Factors are immutable once built.
type Factor struct {
	vars    []*Variable
	strides []int
	table   []float64
	pos     map[string]int
}

// NewFactor builds a factor over vars with the given value table.
// len(table) must equal the product of the variables' domain sizes.
// Returns ErrNilVariable, ErrBadDomain, or ErrTableSize on malformed input.
func NewFactor(vars []*Variable, table []float64) (*Factor, error) {
	size := 1
	pos := make(map[string]int, len(vars))
	for i, v := range vars {
		if v == nil {
			return nil, ErrNilVariable
		}
		if v.Size < 1 {
			return nil, fmt.Errorf("%w: variable %q has size %d", ErrBadDomain, v.ID, v.Size)
		}
		pos[v.ID] = i
		size *= v.Size
	}
	if len(table) != size {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrTableSize, len(table), size)
	}

	// Row-major strides: strides[i] is the index step for vars[i].
	strides := make([]int, len(vars))
	step := 1
	for i := len(vars) - 1; i >= 0; i-- {
		strides[i] = step
		step *= vars[i].Size
	}

	f := &Factor{
		vars:    append([]*Variable(nil), vars...),
		strides: strides,
		table:   append([]float64(nil), table...),
		pos:     pos,
	}

	return f, nil
}

// Arity returns the number of variables in the factor's tuple.
func (f *Factor) Arity() int { return len(f.vars) }

// Vars returns the factor's variables in tuple order. The returned slice is
// a copy; the factor stays immutable.
func (f *Factor) Vars() []*Variable {
	return append([]*Variable(nil), f.vars...)
}

// Touches reports whether the factor's tuple includes the variable with the
// given ID.
func (f *Factor) Touches(id string) bool {
	_, ok := f.pos[id]

	return ok
}

// Position returns the tuple position of the variable with the given ID.
func (f *Factor) Position(id string) (int, bool) {
	i, ok := f.pos[id]

	return i, ok
}

// Index converts a joint assignment (one value index per tuple variable, in
// tuple order) into the row-major table offset.
//
// Precondition: len(assignment) == Arity() and each entry lies inside its
// variable's domain; hot-path callers are expected to guarantee this.
func (f *Factor) Index(assignment []int) int {
	idx := 0
	for i, a := range assignment {
		idx += a * f.strides[i]
	}

	return idx
}

// At returns the factor value for the given joint assignment.
// Same precondition as Index.
func (f *Factor) At(assignment []int) float64 {
	return f.table[f.Index(assignment)]
}

// AtIndex returns the factor value at a precomputed row-major offset.
func (f *Factor) AtIndex(idx int) float64 {
	return f.table[idx]
}
