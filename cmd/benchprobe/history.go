package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/qjpcpu/benchprobe/bench"
	"github.com/qjpcpu/benchprobe/cli"
	"github.com/qjpcpu/benchprobe/history"
	"github.com/qjpcpu/benchprobe/printer"
)

func defaultHistoryDir() string {
	dir, err := history.HomeDir()
	if err != nil {
		return ""
	}
	return dir
}

// openStore use the home store unless dir points elsewhere
func openStore(dir string) (*history.Store, error) {
	if dir == "" || dir == defaultHistoryDir() {
		return history.OpenHome()
	}
	return history.Open(dir)
}

func historyCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	dir := fs.String("history", "", "history dir (default ~/.benchprobe)")
	compare := fs.Bool("compare", false, "compare the newest run with the previous run of the same toolchain")
	dump := fs.Bool("json", false, "print runs as json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var store *history.Store
	if *dir == "" {
		store = history.MustOpenHome()
	} else {
		var err error
		if store, err = history.Open(*dir); err != nil {
			return err
		}
	}
	defer store.Close()
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		printer.Warn("no run stored")
		return nil
	}
	if *dump {
		printer.PrintObject(runs)
	} else {
		tb := cli.NewTable().SetOutput(stdout)
		tb.SetHeader("ID", "Toolchain", "Platform", "Cases")
		for _, run := range runs {
			tb.AddRow(run.ID, run.Toolchain, run.GOOS+"/"+run.GOARCH, len(run.Results))
		}
		tb.Render()
	}

	if !*compare {
		return nil
	}
	base, ok := history.Baseline(runs, runs[0])
	if !ok {
		printer.Warn("no earlier run built by %s", runs[0].Toolchain)
		return nil
	}
	renderDeltas(stdout, base, runs[0])
	return nil
}

func renderDeltas(w io.Writer, prev, cur bench.Run) string {
	tb := cli.NewTable().SetOutput(w)
	tb.SetHeader("Case", prev.ID+" (ms)", cur.ID+" (ms)", "Change")
	for _, d := range history.Compare(prev, cur) {
		change := fmt.Sprintf("%+.2f%%", d.Change)
		if d.Change > 0 {
			change = printer.Red(change)
		} else {
			change = printer.Green(change)
		}
		tb.AddRow(d.Key, fmt.Sprintf("%.4f", d.Previous.MeanMs()), fmt.Sprintf("%.4f", d.Current.MeanMs()), change)
	}
	return tb.Render()
}
