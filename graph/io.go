package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Source is one initial frontier entry: a node and its starting distance.
type Source struct {
	Node uint32
	Dist uint64
}

// LoadEdgeList reads a text graph file: a header line "n m" followed by
// exactly m records "u v w". Records need not be grouped by source; the
// builder groups them. Self loops are accepted. Any shortfall, surplus, or
// malformed record is an error; nothing is silently repaired.
func LoadEdgeList(path string) (*Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileOpen, path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: %s: missing header", ErrParse, path)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: %s: header needs 2 fields, got %d", ErrParse, path, len(fields))
	}
	n, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: node count: %v", ErrParse, path, err)
	}
	m, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: edge count: %v", ErrParse, path, err)
	}

	b := NewBuilder(uint32(n))
	line := 1
	for i := uint64(0); i < m; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: %s: expected %d edges, got %d", ErrParse, path, m, i)
		}
		line++
		fields = strings.Fields(scanner.Text())
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %s:%d: edge needs 3 fields, got %d", ErrParse, path, line, len(fields))
		}
		u, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: source: %v", ErrParse, path, line, err)
		}
		v, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: target: %v", ErrParse, path, line, err)
		}
		w, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil || w == 0 {
			return nil, fmt.Errorf("%w: %s:%d: weight must be a positive integer", ErrParse, path, line)
		}
		if err := b.AddEdge(uint32(u), uint32(v), w); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
	}
	if scanner.Scan() && len(strings.TrimSpace(scanner.Text())) > 0 {
		return nil, fmt.Errorf("%w: %s: data beyond declared %d edges", ErrParse, path, m)
	}
	return b.Finalize(), nil
}

// LoadSources reads a text source file: a header line "k" followed by k
// records "s d0". Ids must be unique and < n; initial distances may be
// non-zero (resuming a bounded computation from a prior boundary).
func LoadSources(path string, n uint32) ([]Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileOpen, path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: %s: missing header", ErrParse, path)
	}
	k, err := strconv.ParseUint(strings.TrimSpace(scanner.Text()), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: source count: %v", ErrParse, path, err)
	}

	sources := make([]Source, 0, k)
	seen := make(map[uint32]struct{}, k)
	line := 1
	for i := uint64(0); i < k; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: %s: expected %d sources, got %d", ErrParse, path, k, i)
		}
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %s:%d: source needs 2 fields, got %d", ErrParse, path, line, len(fields))
		}
		s, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: node id: %v", ErrParse, path, line, err)
		}
		d0, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: initial distance: %v", ErrParse, path, line, err)
		}
		if uint32(s) >= n {
			return nil, fmt.Errorf("%w: %s:%d: source %d of %d", ErrRange, path, line, s, n)
		}
		if _, dup := seen[uint32(s)]; dup {
			return nil, fmt.Errorf("%w: %s:%d: duplicate source %d", ErrParse, path, line, s)
		}
		seen[uint32(s)] = struct{}{}
		sources = append(sources, Source{Node: uint32(s), Dist: d0})
	}
	return sources, nil
}

// WriteEdgeList emits g in the edge-list text format LoadEdgeList reads.
// Generated graphs exported this way feed the same inputs to other
// implementations of the benchmark.
func WriteEdgeList(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.N, len(g.Edges)); err != nil {
		return err
	}
	for u := uint32(0); u < g.N; u++ {
		for _, e := range g.OutEdges(u) {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", u, e.To, e.Weight); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
