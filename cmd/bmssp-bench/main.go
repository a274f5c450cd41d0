package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/bmssp-bench/bench"
	"github.com/ScottSallinen/bmssp-bench/utils"

	_ "net/http/pprof"
)

// Flags mirror bench.Options; a YAML scenario file may supply the same
// fields, with explicitly passed flags taking precedence over the file.
func flagsToOptions() bench.Options {
	defaults := bench.DefaultOptions()

	graphPtr := flag.String("graph", defaults.GraphType, "Graph type: lattice, random, or preferential-attachment.")
	rowsPtr := flag.Uint("rows", uint(defaults.Rows), "Lattice rows.")
	colsPtr := flag.Uint("cols", uint(defaults.Cols), "Lattice columns.")
	nPtr := flag.Uint("n", uint(defaults.N), "Node count for random / preferential-attachment.")
	pPtr := flag.Float64("p", defaults.P, "Edge probability for random graphs.")
	m0Ptr := flag.Uint("m0", uint(defaults.M0), "Initial clique size for preferential attachment.")
	mPtr := flag.Uint("m", uint(defaults.MEach), "Edges per new node for preferential attachment.")
	maxwPtr := flag.Uint("maxw", uint(defaults.MaxWeight), "Maximum edge weight (weights are uniform in [1,maxw]).")
	kPtr := flag.Uint("k", uint(defaults.K), "Number of random sources.")
	boundPtr := flag.Uint64("B", defaults.Bound, "Distance bound; no distance >= B is finalized.")
	seedPtr := flag.Uint64("seed", defaults.Seed, "Seed for graph and source randomness.")
	trialsPtr := flag.Int("trials", defaults.Trials, "Trial count; the graph is built once and reused.")
	gfPtr := flag.String("gf", "", "External graph file (edge list); overrides -graph.")
	sfPtr := flag.String("sf", "", "External sources file; overrides -k.")
	configPtr := flag.String("config", "", "YAML scenario preset; explicit flags override it.")
	exportPtr := flag.String("export", "", "Write the built graph to this path as an edge list.")
	checkPtr := flag.Bool("c", false, "Check correctness against a Bellman-Ford oracle after the trials (slow).")

	debugPtr := flag.Int("debug", 0, "Adds extra debug output. Level 0 for info, 1 for debug, 2 for trace.")
	colourPtr := flag.Bool("nc", false, "Removes the colouring from the log output.")
	pprofPtr := flag.String("pprof", "", "If set, will serve pprof on the given address:port. E.g.\"0.0.0.0:6060\".")
	flag.Parse()

	if *colourPtr {
		utils.SetLoggerConsole(true)
	}
	utils.SetLevel(*debugPtr)

	if *pprofPtr != "" {
		go func() {
			log.Info().Msg("pprof Starting on " + *pprofPtr)
			err := http.ListenAndServe(*pprofPtr, nil)
			if err != nil {
				log.Error().Err(err).Msg("pprof Failed to start.")
			}
		}()
	}

	opts := defaults
	if *configPtr != "" {
		var err error
		opts, err = bench.LoadConfig(*configPtr)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load config.")
		}
	}

	// Explicitly passed flags win over config file values.
	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	apply := func(name string, set func()) {
		if *configPtr == "" || explicit[name] {
			set()
		}
	}
	apply("graph", func() { opts.GraphType = *graphPtr })
	apply("rows", func() { opts.Rows = uint32(*rowsPtr) })
	apply("cols", func() { opts.Cols = uint32(*colsPtr) })
	apply("n", func() { opts.N = uint32(*nPtr) })
	apply("p", func() { opts.P = *pPtr })
	apply("m0", func() { opts.M0 = uint32(*m0Ptr) })
	apply("m", func() { opts.MEach = uint32(*mPtr) })
	apply("maxw", func() { opts.MaxWeight = uint32(*maxwPtr) })
	apply("k", func() { opts.K = uint32(*kPtr) })
	apply("B", func() { opts.Bound = *boundPtr })
	apply("seed", func() { opts.Seed = *seedPtr })
	apply("trials", func() { opts.Trials = *trialsPtr })
	apply("gf", func() { opts.GraphFile = *gfPtr })
	apply("sf", func() { opts.SourcesFile = *sfPtr })
	apply("export", func() { opts.Export = *exportPtr })
	apply("c", func() { opts.CheckCorrectness = *checkPtr })

	return opts
}

func main() {
	opts := flagsToOptions()
	runner := bench.NewRunner(opts, os.Stdout)
	if err := runner.Run(); err != nil {
		log.Fatal().Err(err).Msg("Benchmark failed.")
	}
}
