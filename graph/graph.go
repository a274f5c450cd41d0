package graph

import (
	"fmt"
	"unsafe"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/bmssp-bench/utils"
)

// Graph is a static weighted directed graph in compact grouped-edge (CSR)
// form: the out edges of node u live in Edges[Offsets[u]:Offsets[u+1]].
// A Graph is immutable once built and safe to reuse across trials.
type Graph struct {
	N       uint32
	Edges   []Edge
	Offsets []uint32
}

type Edge struct {
	To     uint32
	Weight uint64
}

// OutEdges returns the out-edge block of u. Sink nodes yield an empty slice.
func (g *Graph) OutEdges(u uint32) []Edge {
	return g.Edges[g.Offsets[u]:g.Offsets[u+1]]
}

func (g *Graph) EdgeCount() uint64 {
	return uint64(len(g.Edges))
}

// MemoryEstimate reports the resident footprint of the structure plus one
// distance array, the working set of a single bounded run.
func (g *Graph) MemoryEstimate() uint64 {
	edgeBytes := uint64(len(g.Edges)) * uint64(unsafe.Sizeof(Edge{}))
	offsetBytes := uint64(len(g.Offsets)) * uint64(unsafe.Sizeof(uint32(0)))
	distBytes := uint64(g.N) * uint64(unsafe.Sizeof(uint64(0)))
	return edgeBytes + offsetBytes + distBytes
}

// Validate checks the CSR invariants: offsets bracket the edge array, are
// non-decreasing, and every weight is strictly positive.
func (g *Graph) Validate() error {
	if len(g.Offsets) != int(g.N)+1 {
		return fmt.Errorf("%w: offsets length %d for %d nodes", ErrParse, len(g.Offsets), g.N)
	}
	if g.Offsets[0] != 0 {
		return fmt.Errorf("%w: offsets[0] = %d", ErrParse, g.Offsets[0])
	}
	if g.Offsets[g.N] != uint32(len(g.Edges)) {
		return fmt.Errorf("%w: offsets[n] = %d, have %d edges", ErrParse, g.Offsets[g.N], len(g.Edges))
	}
	for u := uint32(0); u < g.N; u++ {
		if g.Offsets[u+1] < g.Offsets[u] {
			return fmt.Errorf("%w: offsets decrease at node %d", ErrParse, u)
		}
	}
	for i := range g.Edges {
		if g.Edges[i].To >= g.N {
			return fmt.Errorf("%w: edge %d targets node %d of %d", ErrRange, i, g.Edges[i].To, g.N)
		}
		if g.Edges[i].Weight == 0 {
			return fmt.Errorf("%w: edge %d has zero weight", ErrParse, i)
		}
	}
	return nil
}

func (g *Graph) LogStats() {
	numSinks := uint64(0)
	maxOutDegree := uint32(0)
	for u := uint32(0); u < g.N; u++ {
		deg := g.Offsets[u+1] - g.Offsets[u]
		if deg == 0 {
			numSinks++
		}
		maxOutDegree = utils.Max(maxOutDegree, deg)
	}
	log.Debug().Msg("Nodes " + fmt.Sprint(g.N) + " Edges " + fmt.Sprint(len(g.Edges)) +
		" Sinks " + fmt.Sprint(numSinks) + " MaxOutDeg " + fmt.Sprint(maxOutDegree) +
		" MemEstimate(KiB) " + fmt.Sprint(g.MemoryEstimate()/1024))
}
