package blocks_test

import (
	"fmt"
	"testing"

	"github.com/p2t2/figaro/blocks"
	"github.com/p2t2/figaro/factor"
)

// BenchmarkPartition_Chains partitions R independent deterministic chains of
// depth D each (R blocks of D+1 variables).
func BenchmarkPartition_Chains(b *testing.B) {
	const (
		R = 100
		D = 50
	)
	g := factor.NewGraph()
	for r := 0; r < R; r++ {
		root := fmt.Sprintf("root%d", r)
		_ = g.AddVariable(&factor.Variable{
			ID: root, Size: 2, Irregular: factor.NoIrregular, Kind: factor.Stochastic{},
		})
		parent := root
		for d := 0; d < D; d++ {
			id := fmt.Sprintf("v%d_%d", r, d)
			_ = g.AddVariable(&factor.Variable{
				ID: id, Size: 2, Irregular: factor.NoIrregular,
				Kind: factor.Apply{Args: []string{parent}},
			})
			parent = id
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = blocks.Partition(g)
	}
}
