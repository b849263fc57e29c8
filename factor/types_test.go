package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/p2t2/figaro/factor"
)

func TestVariable_Regular(t *testing.T) {
	v := &factor.Variable{ID: "x", Size: 3, Irregular: 0}
	assert.False(t, v.Regular(0), "irregular marker is not regular")
	assert.True(t, v.Regular(1))
	assert.True(t, v.Regular(2))
	assert.False(t, v.Regular(3), "out of domain")
	assert.False(t, v.Regular(-1))

	plain := &factor.Variable{ID: "y", Size: 2, Irregular: factor.NoIrregular}
	assert.True(t, plain.Regular(0))
	assert.True(t, plain.Regular(1))
}

func TestKind_Parents(t *testing.T) {
	assert.Empty(t, factor.Stochastic{}.Parents())
	assert.Equal(t, []string{"a", "b"}, factor.Apply{Args: []string{"a", "b"}}.Parents())
	assert.Equal(t,
		[]string{"sel", "o1", "o2"},
		factor.Branch{Selector: "sel", Outcomes: []string{"o1", "o2"}}.Parents())
	assert.Equal(t, []string{"res"}, factor.BranchHelper{Result: "res"}.Parents())
}

func TestVariable_Parents_NilKindIsStochastic(t *testing.T) {
	v := &factor.Variable{ID: "x", Size: 2, Irregular: factor.NoIrregular}
	assert.Empty(t, v.Parents(), "nil Kind must behave as a parentless stochastic variable")
}

func TestNewFactor_Validation(t *testing.T) {
	x := &factor.Variable{ID: "x", Size: 2, Irregular: factor.NoIrregular}

	_, err := factor.NewFactor([]*factor.Variable{nil}, []float64{1})
	assert.ErrorIs(t, err, factor.ErrNilVariable)

	_, err = factor.NewFactor([]*factor.Variable{{ID: "bad", Size: 0}}, nil)
	assert.ErrorIs(t, err, factor.ErrBadDomain)

	_, err = factor.NewFactor([]*factor.Variable{x}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, factor.ErrTableSize)
}

func TestFactor_IndexAndAt(t *testing.T) {
	x := &factor.Variable{ID: "x", Size: 2, Irregular: factor.NoIrregular}
	y := &factor.Variable{ID: "y", Size: 3, Irregular: factor.NoIrregular}

	// Row-major: the last variable varies fastest.
	table := []float64{0, 1, 2, 10, 11, 12}
	f, err := factor.NewFactor([]*factor.Variable{x, y}, table)
	assert.NoError(t, err)

	assert.Equal(t, 2, f.Arity())
	assert.Equal(t, 0, f.Index([]int{0, 0}))
	assert.Equal(t, 2, f.Index([]int{0, 2}))
	assert.Equal(t, 3, f.Index([]int{1, 0}))
	assert.Equal(t, 11.0, f.At([]int{1, 1}))
	assert.Equal(t, 12.0, f.AtIndex(5))

	assert.True(t, f.Touches("x"))
	assert.False(t, f.Touches("z"))
	pos, ok := f.Position("y")
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestFactor_VarsIsCopy(t *testing.T) {
	x := &factor.Variable{ID: "x", Size: 2, Irregular: factor.NoIrregular}
	f, err := factor.NewFactor([]*factor.Variable{x}, []float64{1, 1})
	assert.NoError(t, err)

	vs := f.Vars()
	vs[0] = nil
	assert.Equal(t, "x", f.Vars()[0].ID, "mutating the returned slice must not affect the factor")
}
