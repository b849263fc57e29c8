// Package blocks computes the block partition used by block Gibbs sampling:
// every variable lands in exactly one block, and every deterministic
// descendant shares a block with the stochastic root that drives it.
package blocks

import (
	"context"
	"sort"

	"github.com/p2t2/figaro/factor"
)

// partitioner encapsulates mutable partition state.
type partitioner struct {
	ctx      context.Context
	vars     []*factor.Variable
	parents  map[string][]string
	children map[string][]string
	owner    map[string]int
	groups   []map[string]bool
}

// Partition splits g's variables into blocks, applying any number of
// functional Options. Each block is the closure of one stochastic seed over
// the deterministic-child relation; closures that overlap are merged so the
// result is a true partition. Returns ErrGraphNil for a nil graph,
// ErrOptionViolation for bad options, or the context's error on cancellation.
func Partition(g *factor.Graph, opts ...Option) ([]Block, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	p := &partitioner{
		ctx:      o.Ctx,
		vars:     g.Variables(),
		parents:  make(map[string][]string, g.NumVariables()),
		children: make(map[string][]string, g.NumVariables()),
		owner:    make(map[string]int, g.NumVariables()),
	}
	p.buildRelations(g)
	if err := p.closeSeeds(); err != nil {
		return nil, err
	}
	p.coverStragglers()

	out := p.finish()
	for _, b := range out {
		o.OnBlock(b)
	}

	return out, nil
}

// buildRelations derives the parent map from each variable's Kind, keeping
// only parent IDs actually registered in the graph, then inverts it into the
// child map. Because p.vars is sorted by ID, every child list comes out
// sorted as well, which keeps closure order reproducible.
func (p *partitioner) buildRelations(g *factor.Graph) {
	for _, v := range p.vars {
		var ps []string
		seen := make(map[string]bool)
		for _, pid := range v.Parents() {
			if pid == v.ID || seen[pid] || !g.HasVariable(pid) {
				continue
			}
			seen[pid] = true
			ps = append(ps, pid)
		}
		p.parents[v.ID] = ps
	}
	for _, v := range p.vars {
		for _, pid := range p.parents[v.ID] {
			p.children[pid] = append(p.children[pid], v.ID)
		}
	}
}

// closeSeeds walks every stochastic seed (empty parent set) and computes the
// reflexive-transitive closure of its children with an explicit frontier
// queue. A closure that touches variables already owned by earlier blocks is
// merged into the first such block, resolving diamond dependencies.
func (p *partitioner) closeSeeds() error {
	for _, v := range p.vars {
		if len(p.parents[v.ID]) > 0 {
			continue
		}
		closed, err := p.closure(v.ID)
		if err != nil {
			return err
		}
		p.assign(closed)
	}

	return nil
}

// closure collects seed plus all variables reachable over the child relation,
// in discovery order.
func (p *partitioner) closure(seed string) ([]string, error) {
	visited := map[string]bool{seed: true}
	queue := []string{seed}
	order := make([]string, 0, 1)

	for len(queue) > 0 {
		// cancellation check (once per frontier pop)
		select {
		case <-p.ctx.Done():
			return nil, p.ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, child := range p.children[cur] {
			if !visited[child] {
				visited[child] = true
				queue = append(queue, child)
			}
		}
	}

	return order, nil
}

// assign places a closed set into a block slot: a fresh slot if no member is
// owned yet, otherwise the first encountered owner, with any other owning
// slots merged in.
func (p *partitioner) assign(closed []string) {
	target := -1
	for _, id := range closed {
		slot, ok := p.owner[id]
		if !ok {
			continue
		}
		if target == -1 {
			target = slot
			continue
		}
		if slot != target {
			p.merge(slot, target)
		}
	}
	if target == -1 {
		target = len(p.groups)
		p.groups = append(p.groups, make(map[string]bool, len(closed)))
	}
	for _, id := range closed {
		p.owner[id] = target
		p.groups[target][id] = true
	}
}

// merge folds block slot src into dst and retires src.
func (p *partitioner) merge(src, dst int) {
	for id := range p.groups[src] {
		p.owner[id] = dst
		p.groups[dst][id] = true
	}
	p.groups[src] = nil
}

// coverStragglers gives a singleton block to every variable no seed closure
// reached (deterministic cycles, dangling constructs). Sampling such a
// variable alone is less efficient but keeps the partition total.
func (p *partitioner) coverStragglers() {
	for _, v := range p.vars {
		if _, ok := p.owner[v.ID]; ok {
			continue
		}
		slot := len(p.groups)
		p.groups = append(p.groups, map[string]bool{v.ID: true})
		p.owner[v.ID] = slot
	}
}

// finish materializes the surviving slots as Blocks sorted by member ID,
// ordered by each block's first member.
func (p *partitioner) finish() []Block {
	byID := make(map[string]*factor.Variable, len(p.vars))
	for _, v := range p.vars {
		byID[v.ID] = v
	}

	out := make([]Block, 0, len(p.groups))
	for _, grp := range p.groups {
		if grp == nil {
			continue
		}
		ids := make([]string, 0, len(grp))
		for id := range grp {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		b := make(Block, len(ids))
		for i, id := range ids {
			b[i] = byID[id]
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0].ID < out[j][0].ID })

	return out
}
