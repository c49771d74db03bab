package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/qjpcpu/benchprobe/bench"
	"github.com/qjpcpu/benchprobe/cli"
	"github.com/qjpcpu/benchprobe/history"
	"github.com/qjpcpu/benchprobe/printer"
	"github.com/qjpcpu/benchprobe/probe"
	"github.com/qjpcpu/benchprobe/report"
)

type runFlags struct {
	probes        string
	sizes         string
	config        string
	minSamples    int
	maxSamples    int
	maxTime       time.Duration
	minSampleTime time.Duration
	warmup        bool
	csv           string
	json          string
	history       string
	table         bool
	progress      bool
	interactive   bool
	debug         bool
}

func parseRunFlags(args []string) (*runFlags, *flag.FlagSet, error) {
	f := new(runFlags)
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.StringVar(&f.probes, "probes", "", "comma separated probes: "+strings.Join(probe.Keys(), ","))
	fs.StringVar(&f.sizes, "sizes", "", "comma separated sizes, override probe defaults")
	fs.StringVar(&f.config, "config", "", "json config file")
	fs.IntVar(&f.minSamples, "min-samples", 0, "minimum samples per case")
	fs.IntVar(&f.maxSamples, "max-samples", 0, "maximum samples per case")
	fs.DurationVar(&f.maxTime, "max-time", 0, "sampling time per case")
	fs.DurationVar(&f.minSampleTime, "min-sample-time", 0, "minimum duration of one sample")
	fs.BoolVar(&f.warmup, "warmup", true, "call every case once before sampling")
	fs.StringVar(&f.csv, "csv", report.DefaultCSVFile, "csv output, empty disables")
	fs.StringVar(&f.json, "json", "", "json run output")
	fs.StringVar(&f.history, "history", defaultHistoryDir(), "history dir, empty disables")
	fs.BoolVar(&f.table, "table", false, "print result table")
	fs.BoolVar(&f.progress, "progress", false, "show progress bar instead of cycle lines")
	fs.BoolVar(&f.interactive, "i", false, "select probe and sizes interactively")
	fs.BoolVar(&f.debug, "debug", false, "log runner internals")
	err := fs.Parse(args)
	return f, fs, err
}

// options of flags set on command line, they override the config file
func (f *runFlags) options(fs *flag.FlagSet) []bench.Option {
	var opts []bench.Option
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "min-samples":
			opts = append(opts, bench.WithMinSamples(f.minSamples))
		case "max-samples":
			opts = append(opts, bench.WithMaxSamples(f.maxSamples))
		case "max-time":
			opts = append(opts, bench.WithMaxTime(f.maxTime))
		case "min-sample-time":
			opts = append(opts, bench.WithMinSampleTime(f.minSampleTime))
		case "warmup":
			opts = append(opts, bench.WithWarmup(f.warmup))
		}
	})
	return opts
}

func (f *runFlags) suite() (*bench.Suite, error) {
	if f.interactive {
		return interactiveSuite()
	}
	probes, err := probe.Select(f.probes)
	if err != nil {
		return nil, err
	}
	sizes, err := probe.ParseSizes(f.sizes)
	if err != nil {
		return nil, err
	}
	return bench.NewSuite(probes, sizes), nil
}

func interactiveSuite() (*bench.Suite, error) {
	defaults := probe.Defaults()
	var names []string
	for _, p := range defaults {
		names = append(names, p.Name)
	}
	idx := cli.SelectWithSearch("Probe", names)
	if idx < 0 {
		return nil, errors.New("no probe selected")
	}
	p := defaults[idx]
	sizes, ok := cli.InputSizes(p.ParamLabel+" >", p.Sizes, probe.ParseSizes)
	if !ok {
		return nil, errors.New("interrupted")
	}
	return bench.NewSuite([]probe.Probe{p}, sizes), nil
}

// keepCSV ask before an interactive run overwrites results
func (f *runFlags) keepCSV(confirm func(label string, defaultY bool) bool) {
	if !f.interactive || f.csv == "" {
		return
	}
	if _, err := os.Stat(f.csv); err != nil {
		return
	}
	if !confirm("Overwrite "+f.csv, false) {
		f.csv = ""
	}
}

func runCommand(ctx context.Context, args []string) error {
	f, fs, err := parseRunFlags(args)
	if err != nil {
		return err
	}
	bench.Debug = f.debug
	cfg, err := bench.LoadConfig(f.config, f.options(fs)...)
	if err != nil {
		return err
	}
	s, err := f.suite()
	if err != nil {
		return err
	}
	f.keepCSV(cli.Confirm)
	runner := bench.NewRunner(cfg)

	var sinks []report.Sink
	if f.progress {
		bar := cli.NewCaseProgress(s.Len())
		defer bar.Stop()
		sinks = append(sinks, bar)
	} else {
		sinks = append(sinks, report.NewConsole())
	}
	if f.csv != "" {
		sinks = append(sinks, report.NewCSV(f.csv))
	}
	if f.json != "" {
		sinks = append(sinks, report.NewJSON(f.json, cfg))
	}
	if f.table {
		sinks = append(sinks, report.NewTable())
	}
	var baseline *bench.Run
	if f.history != "" {
		store, err := openStore(f.history)
		if err != nil {
			printer.Warn("history disabled: %v", err)
		} else {
			defer store.Close()
			if run, err := store.Latest(runtime.Version()); err == nil {
				baseline = &run
			}
			sinks = append(sinks, history.NewSink(store, cfg))
		}
	}

	binding := report.Attach(runner.Events(), sinks...)
	defer binding.Detach()
	started := time.Now()
	results, err := runner.Run(ctx, s)
	if err != nil {
		return err
	}
	for _, e := range binding.Errors() {
		printer.Warn("%v", e)
	}
	if baseline != nil {
		renderDeltas(stdout, *baseline, bench.NewRun(started, cfg, results))
	}
	return binding.Err()
}
