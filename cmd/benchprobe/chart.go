package main

import (
	"context"
	"flag"

	"github.com/qjpcpu/benchprobe/report"
)

func chartCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("chart", flag.ContinueOnError)
	file := fs.String("csv", report.DefaultCSVFile, "result csv")
	if err := fs.Parse(args); err != nil {
		return err
	}
	results, err := report.ReadCSVFile(*file)
	if err != nil {
		return err
	}
	return report.RenderChart(results)
}
