package cli

import (
	"sync"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/qjpcpu/benchprobe/bench"
)

// Progress group of bars rendered together until Stop
type Progress struct {
	p        *uiprogress.Progress
	interval time.Duration
}

// ProgressBar end a bar, only the first call takes effect
type ProgressBar interface {
	// Finish fill the bar
	Finish()
	// Cancel leave the bar where it is
	Cancel()
}

// NewProgress start rendering, call Stop when done
func NewProgress() *Progress {
	p := uiprogress.New()
	p.Start()
	return &Progress{p: p, interval: time.Millisecond * 20}
}

// WithProgress show a timed bar while fn runs, the bar is filled only when fn succeeds
func WithProgress(name string, duration time.Duration, fn func() error) error {
	progress := NewProgress()
	bar := progress.NewBar(name, duration)
	defer progress.Stop()
	if err := fn(); err != nil {
		bar.Cancel()
		return err
	}
	bar.Finish()
	return nil
}

// NewBar ticks from zero to full in duration
func (p *Progress) NewBar(name string, duration time.Duration) ProgressBar {
	total := int(duration / p.interval)
	if total < 1 {
		total = 1
	}
	bar := p.p.AddBar(total)
	bar.AppendCompleted()
	bar.PrependElapsed()
	if name != "" {
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return name
		})
	}
	stopc := make(chan struct{})
	go func() {
		for bar.Incr() {
			select {
			case <-time.After(p.interval):
			case <-stopc:
				return
			}
		}
	}()
	return createBarStub(func(success bool) {
		close(stopc)
		if success {
			bar.Set(bar.Total)
		}
	})
}

// Stop rendering
func (p *Progress) Stop() {
	p.p.Stop()
}

type pBar struct {
	once   *sync.Once
	stopFn func(success bool)
}

func createBarStub(fn func(bool)) *pBar {
	return &pBar{stopFn: fn, once: new(sync.Once)}
}

func (p *pBar) Finish() {
	p.once.Do(func() {
		p.stopFn(true)
	})
}

func (p *pBar) Cancel() {
	p.once.Do(func() {
		p.stopFn(false)
	})
}

// CaseProgress count finished cases of a suite
type CaseProgress struct {
	progress *Progress
	bar      *uiprogress.Bar
	mu       sync.Mutex
	current  string
	stopped  bool
}

// NewCaseProgress start a bar of total cases
func NewCaseProgress(total int) *CaseProgress {
	cp := &CaseProgress{progress: NewProgress()}
	if total < 1 {
		total = 1
	}
	cp.bar = cp.progress.p.AddBar(total)
	cp.bar.AppendCompleted()
	cp.bar.PrependElapsed()
	cp.bar.AppendFunc(func(b *uiprogress.Bar) string {
		cp.mu.Lock()
		defer cp.mu.Unlock()
		return cp.current
	})
	return cp
}

func (cp *CaseProgress) OnCycle(e bench.CycleEvent) {
	cp.mu.Lock()
	cp.current = e.Result.Key()
	cp.mu.Unlock()
	cp.bar.Incr()
}

func (cp *CaseProgress) OnComplete(bench.CompleteEvent) error {
	cp.Stop()
	return nil
}

// Stop bar, safe to call more than once
func (cp *CaseProgress) Stop() {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	if cp.stopped {
		return
	}
	cp.stopped = true
	cp.progress.Stop()
}
