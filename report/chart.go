package report

import (
	"errors"
	"fmt"

	ui "github.com/gizak/termui"
	"github.com/qjpcpu/benchprobe/bench"
)

// ChartGroup bars of one benchmark, values in microseconds
type ChartGroup struct {
	Benchmark string
	Labels    []string
	Values    []int
}

// GroupForChart group results by benchmark keeping first seen order
func GroupForChart(results []bench.Result) []ChartGroup {
	var groups []ChartGroup
	index := make(map[string]int)
	for _, r := range results {
		i, ok := index[r.Benchmark]
		if !ok {
			i = len(groups)
			index[r.Benchmark] = i
			groups = append(groups, ChartGroup{Benchmark: r.Benchmark})
		}
		groups[i].Labels = append(groups[i].Labels, fmt.Sprintf("%s:%d", r.Environment, r.Size))
		groups[i].Values = append(groups[i].Values, int(r.Mean.Nanoseconds()/1000))
	}
	return groups
}

func barWidth(labels []string) int {
	w := 6
	for _, l := range labels {
		if len(l) > w {
			w = len(l)
		}
	}
	return w
}

// RenderChart draw one bar chart per benchmark in a 2 column grid, block until q pressed
func RenderChart(results []bench.Result) error {
	groups := GroupForChart(results)
	if len(groups) == 0 {
		return errors.New("chart: no result")
	}
	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()

	width, height := ui.TermWidth()/2, ui.TermHeight()/((len(groups)+1)/2)
	if height < 8 {
		height = 8
	}
	var charts []ui.Bufferer
	for i, g := range groups {
		bc := ui.NewBarChart()
		bc.BorderLabel = g.Benchmark + " (µs)"
		bc.Data = g.Values
		bc.DataLabels = g.Labels
		bc.BarWidth = barWidth(g.Labels)
		bc.BarGap = 1
		bc.Width = width
		bc.Height = height
		bc.X = (i % 2) * width
		bc.Y = (i / 2) * height
		bc.TextColor = ui.ColorWhite
		bc.BarColor = ui.ColorCyan
		bc.NumColor = ui.ColorBlack
		charts = append(charts, bc)
	}
	ui.Render(charts...)
	ui.Handle("/sys/kbd/q", func(ui.Event) {
		ui.StopLoop()
	})
	ui.Loop()
	return nil
}
