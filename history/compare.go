package history

import (
	"github.com/qjpcpu/benchprobe/bench"
)

// Delta of one case between two runs
type Delta struct {
	Key      string
	Previous bench.Result
	Current  bench.Result
	// Change of mean in percent, negative is faster
	Change float64
}

// Compare cur against prev, cases missing on either side are skipped
func Compare(prev, cur bench.Run) []Delta {
	old := make(map[string]bench.Result, len(prev.Results))
	for _, r := range prev.Results {
		old[r.Key()] = r
	}
	var deltas []Delta
	for _, r := range cur.Results {
		p, ok := old[r.Key()]
		if !ok || p.Mean <= 0 {
			continue
		}
		deltas = append(deltas, Delta{
			Key:      r.Key(),
			Previous: p,
			Current:  r,
			Change:   (float64(r.Mean) - float64(p.Mean)) / float64(p.Mean) * 100,
		})
	}
	return deltas
}
