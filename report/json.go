package report

import (
	"time"

	"github.com/qjpcpu/benchprobe/bench"
	"github.com/qjpcpu/benchprobe/json"
	"github.com/qjpcpu/benchprobe/printer"
)

// JSON write the whole run as one document
type JSON struct {
	Path   string
	Config bench.Config
	now    func() time.Time
}

// NewJSON sink writing to path
func NewJSON(path string, cfg bench.Config) *JSON {
	return &JSON{Path: path, Config: cfg, now: time.Now}
}

func (j *JSON) OnCycle(bench.CycleEvent) {}

func (j *JSON) OnComplete(e bench.CompleteEvent) error {
	run := bench.NewRun(j.now().Add(-e.Elapsed), j.Config, e.Results)
	if err := json.WriteFile(j.Path, run); err != nil {
		return err
	}
	printer.Info("Wrote %s", j.Path)
	return nil
}
