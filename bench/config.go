package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Graph type names recognized by Options.GraphType.
const (
	GraphLattice = "lattice"
	GraphRandom  = "random"
	GraphPrefAtt = "preferential-attachment"
)

// Options is the full configuration surface of one benchmark invocation.
// Zero values are replaced by the documented defaults; only unreadable or
// malformed input files are fatal.
type Options struct {
	GraphType string `yaml:"graph"`

	Rows uint32 `yaml:"rows"` // Lattice.
	Cols uint32 `yaml:"cols"`

	N uint32  `yaml:"n"` // Random and preferential attachment.
	P float64 `yaml:"p"`

	M0    uint32 `yaml:"m0"` // Preferential attachment.
	MEach uint32 `yaml:"m"`

	MaxWeight uint32 `yaml:"maxw"`
	K         uint32 `yaml:"k"`
	Bound     uint64 `yaml:"bound"`
	Seed      uint64 `yaml:"seed"`
	Trials    int    `yaml:"trials"`

	GraphFile   string `yaml:"graph_file"`   // External edge list; overrides GraphType.
	SourcesFile string `yaml:"sources_file"` // External source list; overrides K.
	Export      string `yaml:"export"`       // If set, write the built graph here as an edge list.

	CheckCorrectness bool `yaml:"check"`
}

func DefaultOptions() Options {
	return Options{
		GraphType: GraphLattice,
		Rows:      50,
		Cols:      50,
		N:         10000,
		P:         0.0005,
		M0:        5,
		MEach:     5,
		MaxWeight: 100,
		K:         16,
		Bound:     200,
		Seed:      42,
		Trials:    5,
	}
}

// LoadConfig reads a YAML scenario preset. Fields absent from the file keep
// their defaults; flags parsed by the caller may still override afterwards.
func LoadConfig(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}

// Validate rejects option combinations no component downstream can serve.
func (o *Options) Validate() error {
	switch o.GraphType {
	case GraphLattice, GraphRandom, GraphPrefAtt:
	default:
		if o.GraphFile == "" {
			return fmt.Errorf("unknown graph type %q", o.GraphType)
		}
	}
	if o.MaxWeight == 0 {
		return fmt.Errorf("max weight must be positive")
	}
	if o.Trials <= 0 {
		return fmt.Errorf("trials must be positive")
	}
	return nil
}
