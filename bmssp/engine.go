package bmssp

import (
	"math"

	"github.com/ScottSallinen/bmssp-bench/graph"
	"github.com/ScottSallinen/bmssp-bench/utils"
)

// Inf marks a node not reached below the bound. Distance sums saturate at
// Inf rather than wrapping.
const Inf = uint64(math.MaxUint64)

type entry struct {
	d uint64
	v uint32
}

// Ordered by distance, ties broken by node id so pop order is deterministic.
func (e entry) Less(other entry) bool {
	return e.d < other.d || (e.d == other.d && e.v < other.v)
}

// Result of one bounded run. Dist entries below the bound are exact shortest
// distances; entries at or above it are only upper bounds. Explored lists
// settled nodes in settle order.
type Result struct {
	Dist         []uint64
	Explored     []uint32
	BPrime       uint64
	Settled      uint64
	EdgesScanned uint64
	HeapPushes   uint64
}

func saturatingAdd(a, b uint64) uint64 {
	if a > Inf-b {
		return Inf
	}
	return a + b
}

// Run executes one bounded multi-source pass over g. Source ids must already
// be validated against g (PickSources and LoadSources both do). The graph is
// read only; all mutable state is scoped to this call.
func Run(g *graph.Graph, sources []graph.Source, bound uint64) Result {
	dist := make([]uint64, g.N)
	for i := range dist {
		dist[i] = Inf
	}
	res := Result{Dist: dist, BPrime: Inf}

	// Sources push unconditionally (no bound check): a source at or past the
	// bound must still surface through the boundary check below, so that
	// B'=d0 is reported rather than silently dropped.
	var pq utils.PQ[entry]
	for _, s := range sources {
		if s.Dist < dist[s.Node] {
			dist[s.Node] = s.Dist
			pq.Push(entry{d: s.Dist, v: s.Node})
		}
	}

	for len(pq) > 0 {
		e := pq.Pop()
		d, v := e.d, e.v
		if d != dist[v] {
			continue // Stale entry; a better push superseded it.
		}
		if d >= bound {
			// First pop at or past the bound. The heap yields non-decreasing
			// distances, so this is the exact boundary value.
			res.BPrime = d
			break
		}
		res.Explored = append(res.Explored, v)
		for _, edge := range g.OutEdges(v) {
			res.EdgesScanned++
			nd := saturatingAdd(d, edge.Weight)
			if nd < dist[edge.To] && nd < bound {
				dist[edge.To] = nd
				pq.Push(entry{d: nd, v: edge.To})
				res.HeapPushes++
			} else if nd >= bound && nd < res.BPrime {
				// Candidate boundary, kept in case the heap drains before
				// any entry past the bound is popped.
				res.BPrime = nd
			}
		}
	}
	res.Settled = uint64(len(res.Explored))
	return res
}
