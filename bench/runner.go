package bench

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Debug would print sampling information
var Debug bool

const maxCallsPerSample = 1 << 30

// Runner run suite case by case
type Runner struct {
	cfg Config
	drv EventDriver
	now func() time.Time
}

// NewRunner create runner, config should be valid
func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg: cfg,
		drv: NewEventDriver(),
		now: time.Now,
	}
}

// Config of runner
func (r *Runner) Config() Config {
	return r.cfg
}

// Events register handlers for StartEvent, CycleEvent and CompleteEvent
func (r *Runner) Events() EventRegister {
	return r.drv
}

// Run every case in suite, stop at first failure or when ctx is done
func (r *Runner) Run(ctx context.Context, s *Suite) ([]Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	begin := r.now()
	r.drv.Trigger(StartEvent{Cases: s.Cases})
	results := make([]Result, 0, s.Len())
	for i, c := range s.Cases {
		res, err := r.runCase(ctx, c)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		r.drv.Trigger(CycleEvent{Index: i, Total: s.Len(), Result: res})
	}
	r.drv.Trigger(CompleteEvent{Results: results, Elapsed: r.now().Sub(begin)})
	return results, nil
}

func (r *Runner) runCase(ctx context.Context, c Case) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if r.cfg.Warmup {
		if err := c.Fn(); err != nil {
			return Result{}, fmt.Errorf("case %s: %v", c.Name(), err)
		}
	}
	count, err := r.calibrate(ctx, c)
	if err != nil {
		return Result{}, err
	}
	if Debug {
		log.Printf("[bench] %s: %d calls per sample", c.Name(), count)
	}

	var samples []float64
	start := r.now()
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		elapsed, err := r.timeCalls(c, count)
		if err != nil {
			return Result{}, err
		}
		samples = append(samples, elapsed.Seconds()/float64(count))
		if len(samples) >= r.cfg.MaxSamples {
			break
		}
		if len(samples) >= r.cfg.MinSamples && r.now().Sub(start) >= time.Duration(r.cfg.MaxTime) {
			break
		}
	}
	st := Compute(samples)
	if Debug {
		log.Printf("[bench] %s: %d samples mean=%v sd=%v", c.Name(), st.Samples, st.Mean, st.Deviation)
	}
	return Result{
		Benchmark:   c.Benchmark,
		Environment: c.Environment,
		Size:        c.Size,
		Mean:        secondsToDuration(st.Mean),
		Deviation:   secondsToDuration(st.Deviation),
		Samples:     st.Samples,
		OpsPerSec:   st.OpsPerSec(),
		RME:         st.RME,
	}, nil
}

// calibrate find calls per sample so one sample lasts MinSampleTime
func (r *Runner) calibrate(ctx context.Context, c Case) (int, error) {
	min := time.Duration(r.cfg.MinSampleTime)
	count := 1
	for count < maxCallsPerSample {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		elapsed, err := r.timeCalls(c, count)
		if err != nil {
			return 0, err
		}
		if elapsed >= min {
			break
		}
		next := count * 10
		if elapsed > 0 {
			next = int(float64(count) * 1.2 * float64(min) / float64(elapsed))
			if next <= count {
				next = count + 1
			}
			if next > count*100 {
				next = count * 100
			}
		}
		count = next
	}
	if count > maxCallsPerSample {
		count = maxCallsPerSample
	}
	return count, nil
}

func (r *Runner) timeCalls(c Case, count int) (time.Duration, error) {
	start := r.now()
	for i := 0; i < count; i++ {
		if err := c.Fn(); err != nil {
			return 0, fmt.Errorf("case %s: %v", c.Name(), err)
		}
	}
	return r.now().Sub(start), nil
}
