package report

import (
	"sync"

	"github.com/qjpcpu/benchprobe/bench"
)

// Sink consume runner events
type Sink interface {
	OnCycle(bench.CycleEvent)
	OnComplete(bench.CompleteEvent) error
}

// Binding of sinks to a runner
type Binding struct {
	mu    sync.Mutex
	stubs []bench.Stub
	errs  []error
}

// Attach sinks to runner events, sinks are called in order
func Attach(reg bench.EventRegister, sinks ...Sink) *Binding {
	b := new(Binding)
	for _, s := range sinks {
		if s == nil {
			continue
		}
		sink := s
		b.stubs = append(b.stubs,
			reg.OnEvent(func(e bench.CycleEvent) { sink.OnCycle(e) }),
			reg.OnEvent(func(e bench.CompleteEvent) {
				if err := sink.OnComplete(e); err != nil {
					b.mu.Lock()
					b.errs = append(b.errs, err)
					b.mu.Unlock()
				}
			}),
		)
	}
	return b
}

// Errors returned by sinks on completion
func (b *Binding) Errors() []error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]error(nil), b.errs...)
}

// Err first completion error
func (b *Binding) Err() error {
	if errs := b.Errors(); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Detach all sinks
func (b *Binding) Detach() {
	for _, s := range b.stubs {
		s.Unbind()
	}
	b.stubs = nil
}
