package report

import (
	"io"
	"os"

	"github.com/qjpcpu/benchprobe/bench"
	"github.com/qjpcpu/benchprobe/cli"
)

// Table render all results on completion
type Table struct {
	Output io.Writer
}

// NewTable sink write to stdout
func NewTable() *Table {
	return &Table{Output: os.Stdout}
}

func (t *Table) OnCycle(bench.CycleEvent) {}

func (t *Table) OnComplete(e bench.CompleteEvent) error {
	RenderTable(t.Output, e.Results)
	return nil
}

// RenderTable of results, return rendered text
func RenderTable(w io.Writer, results []bench.Result) string {
	tb := cli.NewTable().SetOutput(w)
	tb.SetHeader("Benchmark", "Environment", "Size", "Mean (ms)", "Deviation (ms)", "±RME", "Ops/sec", "Samples")
	for _, r := range results {
		tb.AddRow(
			r.Benchmark,
			r.Environment,
			groupInt(r.Size),
			groupFloat(r.MeanMs(), 4),
			groupFloat(r.DeviationMs(), 4),
			groupFloat(r.RME, 2)+"%",
			opsString(r.OpsPerSec),
			r.Samples,
		)
	}
	return tb.Render()
}
