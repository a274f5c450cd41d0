package graph

// Rand is a splitmix64 sequence. The generator is part of the benchmark
// contract: every implementation that follows the same recurrence produces
// identical graphs and source sets for identical seeds, so results are
// comparable across language ports.
//
// Recurrence (Vigna's splitmix64): state advances by the golden gamma
// 0x9E3779B97F4A7C15, then the output is the state mixed through two
// xor-shift-multiply rounds (0xBF58476D1CE4E5B9, 0x94D049BB133111EB).
type Rand struct {
	state uint64
}

// SourceStreamGamma derives the source-selection stream from the graph seed,
// so source choice and topology vary independently under one seed.
const SourceStreamGamma = 0x9E3779B97F4A7C15

func NewRand(seed uint64) *Rand {
	return &Rand{state: seed}
}

func (r *Rand) Uint64() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Float64 returns a uniform value in [0,1) with 53 bits of precision.
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Uint32n returns a uniform value in [0,n). Plain modulo reduction; the bias
// for the ranges this benchmark uses (n well below 2^32) is far below 2^-32,
// and modulo keeps the recurrence trivially portable.
func (r *Rand) Uint32n(n uint32) uint32 {
	return uint32(r.Uint64() % uint64(n))
}

// Weight draws an edge weight uniform in [1, maxWeight].
func (r *Rand) Weight(maxWeight uint32) uint64 {
	return uint64(r.Uint32n(maxWeight)) + 1
}
