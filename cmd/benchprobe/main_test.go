package main

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/qjpcpu/benchprobe/bench"
	"github.com/qjpcpu/benchprobe/history"
	"github.com/qjpcpu/benchprobe/list"
	"github.com/qjpcpu/benchprobe/printer"
	"github.com/qjpcpu/benchprobe/report"
	"github.com/stretchr/testify/assert"
)

func TestCheckKind(t *testing.T) {
	for _, kind := range list.Kinds() {
		assert.NoError(t, checkKind(kind, 100), string(kind))
		assert.NoError(t, checkKind(kind, 0), string(kind))
	}
	assert.Error(t, checkKind(list.Kind("skiplist"), 10))
}

func TestRunFlagsOptions(t *testing.T) {
	f, fs, err := parseRunFlags([]string{"-max-time", "20ms", "-probes", "recursion"})
	assert.NoError(t, err)
	cfg := bench.NewConfig(f.options(fs)...)
	assert.Equal(t, bench.Duration(20*time.Millisecond), cfg.MaxTime)
	assert.Equal(t, bench.DefaultConfig().MinSamples, cfg.MinSamples)
	assert.Equal(t, bench.DefaultConfig().Warmup, cfg.Warmup)

	f, fs, err = parseRunFlags([]string{"-max-samples", "9", "-min-sample-time", "1ms", "-warmup=false"})
	assert.NoError(t, err)
	cfg = bench.NewConfig(f.options(fs)...)
	assert.Equal(t, 9, cfg.MaxSamples)
	assert.Equal(t, bench.Duration(time.Millisecond), cfg.MinSampleTime)
	assert.False(t, cfg.Warmup)

	s, err := f.suite()
	assert.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	f, _, err = parseRunFlags([]string{"-probes", "quicksort"})
	assert.NoError(t, err)
	_, err = f.suite()
	assert.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	dir, err := ioutil.TempDir("", "benchprobe")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)
	old := printer.Output
	printer.Output = ioutil.Discard
	defer func() { printer.Output = old }()

	csvFile := filepath.Join(dir, "out.csv")
	historyDir := filepath.Join(dir, "history")
	err = runCommand(context.Background(), []string{
		"-probes", "sumsquares,array",
		"-sizes", "10",
		"-min-samples", "2",
		"-max-time", "5ms",
		"-csv", csvFile,
		"-json", filepath.Join(dir, "run.json"),
		"-history", historyDir,
	})
	assert.NoError(t, err)

	results, err := report.ReadCSVFile(csvFile)
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "Sum of squares", results[0].Benchmark)

	store, err := history.Open(historyDir)
	assert.NoError(t, err)
	defer store.Close()
	runs, err := store.List()
	assert.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRunCommandCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	old := printer.Output
	printer.Output = ioutil.Discard
	defer func() { printer.Output = old }()
	err := runCommand(ctx, []string{"-probes", "recursion", "-sizes", "10", "-csv", "", "-history", ""})
	assert.Equal(t, context.Canceled, err)
}

type failingPopQueue struct {
	*list.LinkedList
	pops, failAt int
}

func (q *failingPopQueue) PopFirstElement() (int, error) {
	q.pops++
	if q.pops == q.failAt {
		return 0, errors.New("broken link")
	}
	return q.LinkedList.PopFirstElement()
}

func TestCheckQueuePopError(t *testing.T) {
	/* self check pops 10 values plus one empty pop, the next pop fails */
	q := &failingPopQueue{LinkedList: list.NewLinkedList(), failAt: 12}
	err := checkQueue(q, 10)
	assert.EqualError(t, err, "pop after 2 appends: broken link")

	assert.NoError(t, checkQueue(&failingPopQueue{LinkedList: list.NewLinkedList()}, 10))
}

type commandOutput struct {
	tables, logs *bytes.Buffer
}

func captureOutput(t *testing.T) (*commandOutput, func()) {
	oldStdout, oldOut, oldNoColor := stdout, printer.Output, color.NoColor
	out := &commandOutput{tables: new(bytes.Buffer), logs: new(bytes.Buffer)}
	stdout, printer.Output, color.NoColor = out.tables, out.logs, true
	return out, func() { stdout, printer.Output, color.NoColor = oldStdout, oldOut, oldNoColor }
}

func saveRuns(t *testing.T, dir string, toolchains ...string) []bench.Run {
	store, err := history.Open(dir)
	assert.NoError(t, err)
	defer store.Close()
	var runs []bench.Run
	for i, tc := range toolchains {
		run := bench.NewRun(time.Date(2021, 1, 1, 0, 0, i, 0, time.UTC), bench.DefaultConfig(), []bench.Result{
			{Benchmark: "Recursion", Environment: "native", Size: 100, Mean: time.Duration(i+1) * time.Microsecond},
		})
		run.Toolchain = tc
		assert.NoError(t, store.Save(run))
		runs = append(runs, run)
	}
	return runs
}

func TestHistoryCompareSameToolchain(t *testing.T) {
	dir, err := ioutil.TempDir("", "benchprobe")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)
	runs := saveRuns(t, dir, "go1.16", "go1.15.2", "go1.16.1")

	out, restore := captureOutput(t)
	defer restore()
	assert.NoError(t, historyCommand(context.Background(), []string{"-history", dir, "-compare"}))
	tables := out.tables.String()
	assert.Contains(t, tables, runs[0].ID+" (ms)")
	assert.Contains(t, tables, runs[2].ID+" (ms)")
	assert.NotContains(t, tables, runs[1].ID+" (ms)")
	assert.Contains(t, tables, "+200.00%")
}

func TestHistoryCompareSkipOtherToolchain(t *testing.T) {
	dir, err := ioutil.TempDir("", "benchprobe")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)
	saveRuns(t, dir, "go1.15.2", "go1.16.1")

	out, restore := captureOutput(t)
	defer restore()
	assert.NoError(t, historyCommand(context.Background(), []string{"-history", dir, "-compare"}))
	assert.NotContains(t, out.tables.String(), "Change")
	assert.Contains(t, out.logs.String(), "no earlier run built by go1.16.1")
}

func TestHistoryJSON(t *testing.T) {
	dir, err := ioutil.TempDir("", "benchprobe")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)
	runs := saveRuns(t, dir, "go1.16")

	out, restore := captureOutput(t)
	defer restore()
	assert.NoError(t, historyCommand(context.Background(), []string{"-history", dir, "-json"}))
	assert.Empty(t, out.tables.String())
	assert.Contains(t, out.logs.String(), runs[0].ID)
	assert.Contains(t, out.logs.String(), "Recursion")
}

func TestKeepCSV(t *testing.T) {
	dir, err := ioutil.TempDir("", "benchprobe")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, "out.csv")
	assert.NoError(t, ioutil.WriteFile(file, []byte("x"), 0644))

	var asked []string
	no := func(label string, defaultY bool) bool {
		asked = append(asked, label)
		return false
	}
	yes := func(string, bool) bool { return true }

	f := &runFlags{interactive: true, csv: file}
	f.keepCSV(no)
	assert.Equal(t, "", f.csv)
	assert.Equal(t, []string{"Overwrite " + file}, asked)

	f = &runFlags{interactive: true, csv: file}
	f.keepCSV(yes)
	assert.Equal(t, file, f.csv)

	/* missing file or non interactive run never asks */
	f = &runFlags{interactive: true, csv: filepath.Join(dir, "new.csv")}
	f.keepCSV(no)
	f = &runFlags{csv: file}
	f.keepCSV(no)
	assert.Len(t, asked, 1)
	assert.Equal(t, file, f.csv)
}

func TestExecuteRecoverPanic(t *testing.T) {
	cmd := command{name: "boom", run: func(context.Context, []string) error {
		panic("store broken")
	}}
	assert.EqualError(t, execute(context.Background(), cmd, nil), "store broken")

	cmd.run = func(context.Context, []string) error { return errors.New("plain") }
	assert.EqualError(t, execute(context.Background(), cmd, nil), "plain")
}
