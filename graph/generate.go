package graph

// Synthetic topologies. All three are deterministic given identical
// parameters and seed and draw every weight uniform in [1, maxWeight].
// Lattice and random graphs are loop free; preferential attachment can
// produce the occasional self loop once a node enters the endpoint multiset.

// Generators construct ids in range by construction, so they bypass the
// per-edge validation of AddEdge.
func (b *Builder) push(u, v uint32, w uint64) {
	b.edges = append(b.edges, rawEdge{src: u, to: v, w: w})
}

// GenerateLattice builds a rows x cols grid, node id r*cols+c. Each node gets
// a directed edge toward every in-bounds neighbour in down, right, up, left
// order. Weights per direction are drawn independently, so the graph is
// directed even though the neighbour relation is symmetric.
func GenerateLattice(rows, cols, maxWeight uint32, seed uint64) *Graph {
	rng := NewRand(seed)
	b := NewBuilder(rows * cols)
	idx := func(r, c uint32) uint32 { return r*cols + c }
	for r := uint32(0); r < rows; r++ {
		for c := uint32(0); c < cols; c++ {
			u := idx(r, c)
			if r+1 < rows {
				b.push(u, idx(r+1, c), rng.Weight(maxWeight))
			}
			if c+1 < cols {
				b.push(u, idx(r, c+1), rng.Weight(maxWeight))
			}
			if r > 0 {
				b.push(u, idx(r-1, c), rng.Weight(maxWeight))
			}
			if c > 0 {
				b.push(u, idx(r, c-1), rng.Weight(maxWeight))
			}
		}
	}
	return b.Finalize()
}

// GenerateRandom builds an Erdős–Rényi style graph: every ordered pair
// (u, v), u != v, is included with independent probability p.
func GenerateRandom(n uint32, p float64, maxWeight uint32, seed uint64) *Graph {
	rng := NewRand(seed)
	b := NewBuilder(n)
	for u := uint32(0); u < n; u++ {
		for v := uint32(0); v < n; v++ {
			if u == v {
				continue
			}
			if rng.Float64() < p {
				b.push(u, v, rng.Weight(maxWeight))
			}
		}
	}
	return b.Finalize()
}

// GeneratePreferentialAttachment builds a Barabási–Albert style graph.
// The first clamp(m0,1,n) nodes form a directed clique; each later node u
// attaches mEach edges whose targets are drawn uniformly from a multiset of
// attachment endpoints. The multiset starts with the clique sources and grows
// by the chosen target and u after every edge, which approximates
// degree-proportional sampling without tracking degrees.
func GeneratePreferentialAttachment(n, m0, mEach, maxWeight uint32, seed uint64) *Graph {
	rng := NewRand(seed)
	b := NewBuilder(n)
	start := m0
	if start < 1 {
		start = 1
	}
	if start > n {
		start = n
	}
	var ends []uint32
	for u := uint32(0); u < start; u++ {
		for v := uint32(0); v < start; v++ {
			if u == v {
				continue
			}
			b.push(u, v, rng.Weight(maxWeight))
			ends = append(ends, u)
		}
	}
	for u := start; u < n; u++ {
		for j := uint32(0); j < mEach; j++ {
			var t uint32
			if len(ends) == 0 {
				t = rng.Uint32n(u)
			} else {
				t = ends[rng.Uint32n(uint32(len(ends)))]
			}
			b.push(u, t, rng.Weight(maxWeight))
			ends = append(ends, t, u)
		}
	}
	return b.Finalize()
}
