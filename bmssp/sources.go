package bmssp

import (
	"fmt"

	"github.com/ScottSallinen/bmssp-bench/graph"
)

// PickSources draws k distinct node ids uniformly from [0,n), all with
// initial distance 0. The random stream is derived from the graph seed
// (seed xor the stream gamma) so that source choice and topology vary
// independently under one seed.
func PickSources(n, k uint32, seed uint64) ([]graph.Source, error) {
	if k > n {
		return nil, fmt.Errorf("%w: %d sources from %d nodes", graph.ErrRange, k, n)
	}
	rng := graph.NewRand(seed ^ graph.SourceStreamGamma)
	sources := make([]graph.Source, 0, k)
	seen := make(map[uint32]struct{}, k)
	for uint32(len(sources)) < k {
		s := rng.Uint32n(n)
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		sources = append(sources, graph.Source{Node: s, Dist: 0})
	}
	return sources, nil
}
