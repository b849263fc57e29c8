package gibbs

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/p2t2/figaro/factor"
)

// WeightedBlockSampler is the default BlockSampler: it enumerates every
// joint assignment of its block's variables, scores each by the product of
// the block's factors with out-of-block variables pinned to the current
// chain state, and draws one assignment in proportion to its score.
//
// Deterministic constraints need no special casing here: a factor encoding
// y = f(x) gives zero weight to every inconsistent combination, so only
// consistent joint assignments can be drawn.
//
// Enumeration is exponential in the block's variable count; blocks are
// expected to be small (a stochastic root plus its deterministic closure).
type WeightedBlockSampler struct {
	vars    []*factor.Variable
	factors []*factor.Factor
	src     rand.Source

	// strides decode a flat assignment index back into per-variable values.
	strides []int
	total   int

	// inBlock[f][j] is the block position of factors[f]'s j-th tuple
	// variable, or -1 when that variable lies outside the block and must be
	// read from the chain state.
	inBlock [][]int
	outIDs  [][]string

	// scratch buffers reused across sweeps
	assign  []int
	weights []float64
	fbuf    [][]int
}

// NewWeightedBlockSampler builds the default sampler for one block from its
// BlockInfo and a rand source (derive one source per block for reproducible,
// independent streams).
func NewWeightedBlockSampler(info BlockInfo, src rand.Source) *WeightedBlockSampler {
	vars := info.Block
	pos := make(map[string]int, len(vars))
	for i, v := range vars {
		pos[v.ID] = i
	}

	strides := make([]int, len(vars))
	total := 1
	for i := len(vars) - 1; i >= 0; i-- {
		strides[i] = total
		total *= vars[i].Size
	}

	ws := &WeightedBlockSampler{
		vars:    []*factor.Variable(vars),
		factors: info.Factors,
		src:     src,
		strides: strides,
		total:   total,
		assign:  make([]int, len(vars)),
		weights: make([]float64, total),
	}
	for _, f := range info.Factors {
		fvars := f.Vars()
		in := make([]int, len(fvars))
		ids := make([]string, len(fvars))
		for j, fv := range fvars {
			ids[j] = fv.ID
			if bi, ok := pos[fv.ID]; ok {
				in[j] = bi
			} else {
				in[j] = -1
			}
		}
		ws.inBlock = append(ws.inBlock, in)
		ws.outIDs = append(ws.outIDs, ids)
		ws.fbuf = append(ws.fbuf, make([]int, len(fvars)))
	}

	return ws
}

// Sample scores every joint assignment of the block under the current state
// and draws one, writing the chosen values back into s. If every assignment
// has zero weight the current values are kept; a sweep never fails.
func (ws *WeightedBlockSampler) Sample(s *State) {
	for idx := 0; idx < ws.total; idx++ {
		ws.decode(idx)
		ws.weights[idx] = ws.score(s)
	}

	w := sampleuv.NewWeighted(ws.weights, ws.src)
	idx, ok := w.Take()
	if !ok {
		// zero total mass: keep the current assignment
		return
	}

	ws.decode(idx)
	for i, v := range ws.vars {
		s.Set(v.ID, ws.assign[i])
	}
}

// decode expands flat index idx into ws.assign, one value per block variable.
func (ws *WeightedBlockSampler) decode(idx int) {
	for i := range ws.vars {
		ws.assign[i] = idx / ws.strides[i]
		idx %= ws.strides[i]
	}
}

// score multiplies the block's factors at the assignment held in ws.assign,
// reading out-of-block variables from the chain state. A variable missing
// from the state contributes zero weight.
func (ws *WeightedBlockSampler) score(s *State) float64 {
	total := 1.0
	for fi, f := range ws.factors {
		buf := ws.fbuf[fi]
		for j, bi := range ws.inBlock[fi] {
			if bi >= 0 {
				buf[j] = ws.assign[bi]
				continue
			}
			val, ok := s.Value(ws.outIDs[fi][j])
			if !ok {
				return 0
			}
			buf[j] = val
		}
		total *= f.At(buf)
		if total == 0 {
			return 0
		}
	}

	return total
}
