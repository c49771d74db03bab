package bench

import (
	"runtime"
	"time"
)

// Run a finished suite with the environment it ran in
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Toolchain string    `json:"toolchain"`
	GOOS      string    `json:"goos"`
	GOARCH    string    `json:"goarch"`
	Config    Config    `json:"config"`
	Results   []Result  `json:"results"`
}

// NewRun record results of current process
func NewRun(startedAt time.Time, cfg Config, results []Result) Run {
	return Run{
		ID:        startedAt.UTC().Format("20060102T150405.000Z"),
		StartedAt: startedAt,
		Toolchain: runtime.Version(),
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		Config:    cfg,
		Results:   results,
	}
}
