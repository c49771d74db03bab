package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/qjpcpu/benchprobe/bench"
	"github.com/qjpcpu/benchprobe/printer"
)

// DefaultCSVFile where results are written
const DefaultCSVFile = "benchmarking_results/benchmarking_results.csv"

var csvHeader = []string{"Benchmark", "Environment", "Size", "Mean (ms)", "Standard Deviation (ms)"}

// CSV write all results on completion
type CSV struct {
	Path string
}

// NewCSV sink writing to path
func NewCSV(path string) *CSV {
	if path == "" {
		path = DefaultCSVFile
	}
	return &CSV{Path: path}
}

func (c *CSV) OnCycle(bench.CycleEvent) {}

func (c *CSV) OnComplete(e bench.CompleteEvent) error {
	if err := WriteCSVFile(c.Path, e.Results); err != nil {
		return err
	}
	printer.Info("Wrote %s", c.Path)
	return nil
}

// WriteCSVFile create parent directories and write results
func WriteCSVFile(path string, results []bench.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCSV header and one row per result, durations in milliseconds
func WriteCSV(w io.Writer, results []bench.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Benchmark,
			r.Environment,
			strconv.Itoa(r.Size),
			strconv.FormatFloat(r.MeanMs(), 'f', -1, 64),
			strconv.FormatFloat(r.DeviationMs(), 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSVFile parse file written by WriteCSVFile
func ReadCSVFile(path string) ([]bench.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parse results, columns are located by header name
func ReadCSV(r io.Reader) ([]bench.Result, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv: missing header")
	}
	col := make(map[string]int)
	for i, name := range records[0] {
		col[name] = i
	}
	for _, name := range csvHeader {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("csv: missing column %q", name)
		}
	}
	var results []bench.Result
	for line, rec := range records[1:] {
		size, err := strconv.Atoi(rec[col["Size"]])
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: bad size %q", line+2, rec[col["Size"]])
		}
		mean, err := strconv.ParseFloat(rec[col["Mean (ms)"]], 64)
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: bad mean %q", line+2, rec[col["Mean (ms)"]])
		}
		sd, err := strconv.ParseFloat(rec[col["Standard Deviation (ms)"]], 64)
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: bad deviation %q", line+2, rec[col["Standard Deviation (ms)"]])
		}
		results = append(results, bench.Result{
			Benchmark:   rec[col["Benchmark"]],
			Environment: rec[col["Environment"]],
			Size:        size,
			Mean:        msToDuration(mean),
			Deviation:   msToDuration(sd),
		})
	}
	return results, nil
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms*float64(time.Millisecond) + 0.5)
}
