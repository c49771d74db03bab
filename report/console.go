package report

import (
	"github.com/qjpcpu/benchprobe/bench"
	"github.com/qjpcpu/benchprobe/printer"
)

// Console print every cycle the way Benchmark.js does
type Console struct {
	Print printer.Printer
}

// NewConsole with colored printer
func NewConsole() *Console {
	return &Console{Print: printer.Print}
}

func (c *Console) OnCycle(e bench.CycleEvent) {
	r := e.Result
	c.Print("%s x %s ops/sec ±%.2f%% (%d runs sampled)", r.Key(), opsString(r.OpsPerSec), r.RME, r.Samples)
	c.Print("         mean: %v", r.Mean.Seconds())
	c.Print("    deviation: %v", r.Deviation.Seconds())
}

func (c *Console) OnComplete(e bench.CompleteEvent) error {
	c.Print("Finished %d cases in %v", len(e.Results), e.Elapsed)
	return nil
}

func opsString(ops float64) string {
	if ops >= 100 {
		return groupFloat(ops, 0)
	}
	return groupFloat(ops, 2)
}
