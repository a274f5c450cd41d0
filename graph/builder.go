package graph

import (
	"fmt"
	"sort"
)

type rawEdge struct {
	src uint32
	to  uint32
	w   uint64
}

// Builder accumulates edges in arrival order and produces a Graph in CSR
// form. Input need not be grouped by source; Finalize performs a stable
// group-by-source pass before laying out offsets, so edges from the same
// source keep their relative order.
type Builder struct {
	n     uint32
	edges []rawEdge
}

func NewBuilder(n uint32) *Builder {
	return &Builder{n: n}
}

// AddEdge records a directed edge u -> v. Ids are validated here so a bad
// record is reported where it occurs, not at Finalize.
func (b *Builder) AddEdge(u, v uint32, w uint64) error {
	if u >= b.n {
		return fmt.Errorf("%w: source %d of %d", ErrRange, u, b.n)
	}
	if v >= b.n {
		return fmt.Errorf("%w: target %d of %d", ErrRange, v, b.n)
	}
	if w == 0 {
		return fmt.Errorf("%w: edge %d -> %d has zero weight", ErrParse, u, v)
	}
	b.edges = append(b.edges, rawEdge{src: u, to: v, w: w})
	return nil
}

// Finalize groups buffered edges by source and builds the offset array.
// The Builder keeps ownership of nothing; the returned Graph is self-contained.
func (b *Builder) Finalize() *Graph {
	sort.SliceStable(b.edges, func(i, j int) bool { return b.edges[i].src < b.edges[j].src })

	g := &Graph{
		N:       b.n,
		Edges:   make([]Edge, len(b.edges)),
		Offsets: make([]uint32, b.n+1),
	}
	for i := range b.edges {
		g.Edges[i] = Edge{To: b.edges[i].to, Weight: b.edges[i].w}
		g.Offsets[b.edges[i].src+1]++
	}
	for u := uint32(0); u < b.n; u++ {
		g.Offsets[u+1] += g.Offsets[u]
	}
	b.edges = nil
	return g
}
