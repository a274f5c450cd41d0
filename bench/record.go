package bench

// Record is the per-trial output line, one JSON object per trial on stdout.
// Field names match the other implementations of this benchmark so report
// tooling can aggregate across them.
type Record struct {
	Impl         string `json:"impl"`
	Lang         string `json:"lang"`
	Run          string `json:"run"`
	Graph        string `json:"graph"`
	N            uint32 `json:"n"`
	M            uint64 `json:"m"`
	K            int    `json:"k"`
	Bound        uint64 `json:"B"`
	Seed         uint64 `json:"seed"`
	TimeNS       int64  `json:"time_ns"`
	Popped       uint64 `json:"popped"`
	EdgesScanned uint64 `json:"edges_scanned"`
	HeapPushes   uint64 `json:"heap_pushes"`
	BPrime       uint64 `json:"B_prime"`
	MemBytes     uint64 `json:"mem_bytes"`
}

const (
	implTag  = "go-bmssp"
	implLang = "Go"
)
