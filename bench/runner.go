package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/bmssp-bench/bmssp"
	"github.com/ScottSallinen/bmssp-bench/graph"
	"github.com/ScottSallinen/bmssp-bench/utils"
)

// Runner owns one benchmark invocation: build or load the graph once,
// resolve the source set once, then time Trials sequential engine runs and
// emit one record per trial. Strictly single threaded.
type Runner struct {
	Opts Options
	Out  io.Writer
}

func NewRunner(opts Options, out io.Writer) *Runner {
	return &Runner{Opts: opts, Out: out}
}

func (r *Runner) Run() error {
	if err := r.Opts.Validate(); err != nil {
		return err
	}
	g, gName, err := r.buildGraph()
	if err != nil {
		return err
	}
	g.LogStats()

	var sources []graph.Source
	if r.Opts.SourcesFile != "" {
		sources, err = graph.LoadSources(r.Opts.SourcesFile, g.N)
	} else {
		sources, err = bmssp.PickSources(g.N, r.Opts.K, r.Opts.Seed)
	}
	if err != nil {
		return err
	}

	if r.Opts.Export != "" {
		if err := r.exportGraph(g); err != nil {
			return err
		}
	}

	runID := uuid.NewString()
	var best Record
	var lastRes bmssp.Result
	watch := utils.Watch{}
	for t := 0; t < r.Opts.Trials; t++ {
		watch.Start()
		res := bmssp.Run(g, sources, r.Opts.Bound)
		elapsed := watch.Elapsed()

		rec := Record{
			Impl:         implTag,
			Lang:         implLang,
			Run:          runID,
			Graph:        gName,
			N:            g.N,
			M:            g.EdgeCount(),
			K:            len(sources),
			Bound:        r.Opts.Bound,
			Seed:         r.Opts.Seed + uint64(t),
			TimeNS:       elapsed.Nanoseconds(),
			Popped:       res.Settled,
			EdgesScanned: res.EdgesScanned,
			HeapPushes:   res.HeapPushes,
			BPrime:       res.BPrime,
			MemBytes:     g.MemoryEstimate(),
		}
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		if _, err := fmt.Fprintln(r.Out, string(line)); err != nil {
			return fmt.Errorf("emit record: %w", err)
		}
		if t == 0 || rec.TimeNS < best.TimeNS {
			best = rec
		}
		lastRes = res
	}
	log.Info().Msg("Best ns=" + utils.V(best.TimeNS) + " popped=" + utils.V(best.Popped) + " B'=" + utils.V(best.BPrime))
	utils.MemoryStats()

	if r.Opts.CheckCorrectness {
		if mismatches := bmssp.CompareToOracle(g, sources, r.Opts.Bound, lastRes); mismatches > 0 {
			return fmt.Errorf("oracle compare failed on %d nodes", mismatches)
		}
	}
	return nil
}

func (r *Runner) buildGraph() (*graph.Graph, string, error) {
	o := &r.Opts
	if o.GraphFile != "" {
		g, err := graph.LoadEdgeList(o.GraphFile)
		if err != nil {
			return nil, "", err
		}
		return g, ExtractGraphName(o.GraphFile), nil
	}
	switch o.GraphType {
	case GraphLattice:
		rows, cols := o.Rows, o.Cols
		if rows == 0 || cols == 0 {
			// Square side derived from n when the grid shape is unspecified.
			side := uint32(math.Sqrt(float64(o.N)))
			if side < 1 {
				side = 1
			}
			rows, cols = side, side
		}
		return graph.GenerateLattice(rows, cols, o.MaxWeight, o.Seed), GraphLattice, nil
	case GraphRandom:
		return graph.GenerateRandom(o.N, o.P, o.MaxWeight, o.Seed), GraphRandom, nil
	case GraphPrefAtt:
		return graph.GeneratePreferentialAttachment(o.N, o.M0, o.MEach, o.MaxWeight, o.Seed), GraphPrefAtt, nil
	}
	return nil, "", fmt.Errorf("unknown graph type %q", o.GraphType)
}

func (r *Runner) exportGraph(g *graph.Graph) error {
	f, err := os.Create(r.Opts.Export)
	if err != nil {
		return fmt.Errorf("create export %s: %w", r.Opts.Export, err)
	}
	defer f.Close()
	if err := graph.WriteEdgeList(f, g); err != nil {
		return fmt.Errorf("write export %s: %w", r.Opts.Export, err)
	}
	log.Info().Msg("Exported graph to " + r.Opts.Export)
	return nil
}

// ExtractGraphName reduces a graph file path to its base name without
// extension, for the record's graph field.
func ExtractGraphName(graphFilename string) (graphName string) {
	gNameMainT := strings.Split(graphFilename, "/")
	gNameMain := gNameMainT[len(gNameMainT)-1]
	gNameMainTD := strings.Split(gNameMain, ".")
	if len(gNameMainTD) > 1 {
		return gNameMainTD[len(gNameMainTD)-2]
	}
	return gNameMainTD[0]
}
