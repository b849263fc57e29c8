package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p2t2/figaro/factor"
)

func mustVar(t *testing.T, g *factor.Graph, id string, size int) *factor.Variable {
	t.Helper()
	v := &factor.Variable{ID: id, Size: size, Irregular: factor.NoIrregular}
	require.NoError(t, g.AddVariable(v))

	return v
}

func TestGraph_AddVariable_Validation(t *testing.T) {
	g := factor.NewGraph()

	assert.ErrorIs(t, g.AddVariable(nil), factor.ErrNilVariable)
	assert.ErrorIs(t, g.AddVariable(&factor.Variable{Size: 2}), factor.ErrEmptyVariableID)
	assert.ErrorIs(t,
		g.AddVariable(&factor.Variable{ID: "x", Size: 0}),
		factor.ErrBadDomain)
	assert.ErrorIs(t,
		g.AddVariable(&factor.Variable{ID: "x", Size: 2, Irregular: 5}),
		factor.ErrBadDomain, "irregular index outside the domain")

	mustVar(t, g, "x", 2)
	err := g.AddVariable(&factor.Variable{ID: "x", Size: 2, Irregular: factor.NoIrregular})
	assert.ErrorIs(t, err, factor.ErrDuplicateVariable)
}

func TestGraph_AddFactor_Validation(t *testing.T) {
	g := factor.NewGraph()
	x := mustVar(t, g, "x", 2)

	assert.ErrorIs(t, g.AddFactor(nil), factor.ErrNilFactor)

	stranger := &factor.Variable{ID: "ghost", Size: 2, Irregular: factor.NoIrregular}
	f, err := factor.NewFactor([]*factor.Variable{x, stranger}, []float64{1, 1, 1, 1})
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddFactor(f), factor.ErrVariableNotFound)
}

func TestGraph_VariablesSortedByID(t *testing.T) {
	g := factor.NewGraph()
	mustVar(t, g, "c", 2)
	mustVar(t, g, "a", 2)
	mustVar(t, g, "b", 2)

	vs := g.Variables()
	require.Len(t, vs, 3)
	assert.Equal(t, "a", vs[0].ID)
	assert.Equal(t, "b", vs[1].ID)
	assert.Equal(t, "c", vs[2].ID)
	assert.Equal(t, 3, g.NumVariables())
}

func TestGraph_Touching(t *testing.T) {
	g := factor.NewGraph()
	x := mustVar(t, g, "x", 2)
	y := mustVar(t, g, "y", 2)
	z := mustVar(t, g, "z", 2)

	fxy, err := factor.NewFactor([]*factor.Variable{x, y}, []float64{1, 0, 0, 1})
	require.NoError(t, err)
	fz, err := factor.NewFactor([]*factor.Variable{z}, []float64{1, 1})
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(fxy))
	require.NoError(t, g.AddFactor(fz))

	assert.Equal(t, 2, g.NumFactors())
	assert.Len(t, g.Touching("x"), 1)
	assert.Len(t, g.Touching("z"), 1)
	assert.Empty(t, g.Touching("ghost"))
	assert.Same(t, fxy, g.Touching("y")[0])
}
