package bench

import (
	"fmt"
	"time"

	"github.com/qjpcpu/benchprobe/probe"
)

// Case one benchmark at one size in one environment
type Case struct {
	Benchmark   string
	Environment string
	Size        int
	Fn          func() error `json:"-"`
}

// Name like "Sum of squares: native: 1000"
func (c Case) Name() string {
	return fmt.Sprintf("%s: %s: %d", c.Benchmark, c.Environment, c.Size)
}

// Result of a case
type Result struct {
	Benchmark   string        `json:"benchmark"`
	Environment string        `json:"environment"`
	Size        int           `json:"size"`
	Mean        time.Duration `json:"mean"`
	Deviation   time.Duration `json:"deviation"`
	Samples     int           `json:"samples"`
	OpsPerSec   float64       `json:"ops_per_sec"`
	RME         float64       `json:"rme"`
}

// Key identify the case of result
func (r Result) Key() string {
	return fmt.Sprintf("%s: %s: %d", r.Benchmark, r.Environment, r.Size)
}

// MeanMs mean in milliseconds
func (r Result) MeanMs() float64 {
	return float64(r.Mean) / float64(time.Millisecond)
}

// DeviationMs standard deviation in milliseconds
func (r Result) DeviationMs() float64 {
	return float64(r.Deviation) / float64(time.Millisecond)
}

// Suite list of cases run in order
type Suite struct {
	Cases []Case
}

// Add a case
func (s *Suite) Add(benchmark, env string, size int, fn func() error) *Suite {
	s.Cases = append(s.Cases, Case{Benchmark: benchmark, Environment: env, Size: size, Fn: fn})
	return s
}

// Len of suite
func (s *Suite) Len() int {
	return len(s.Cases)
}

// NewSuite expand probes by size then environment, sizes replace every probe's default sizes if not empty
func NewSuite(probes []probe.Probe, sizes []int) *Suite {
	s := new(Suite)
	for _, p := range probes {
		ps := p.Sizes
		if len(sizes) > 0 {
			ps = sizes
		}
		for _, size := range ps {
			for _, env := range p.Environments {
				s.Add(p.Name, env, size, bindProbe(p.Run, env, size))
			}
		}
	}
	return s
}

func bindProbe(run probe.RunFunc, env string, size int) func() error {
	return func() error {
		return run(env, size)
	}
}
