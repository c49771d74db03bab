package list

import (
	"sync"
)

// SyncList guard a Queue with one mutex, safe for concurrent use
type SyncList struct {
	mu sync.Mutex
	q  Queue
}

// NewSyncList wrap q, q should not be used directly afterwards
func NewSyncList(q Queue) *SyncList {
	if q == nil {
		q = NewLinkedList()
	}
	return &SyncList{q: q}
}

func (l *SyncList) Append(v int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.q.Append(v)
}

func (l *SyncList) PopFirstElement() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.PopFirstElement()
}

func (l *SyncList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Len()
}

// Walk hold the lock during iteration, fn must not call back into the list
func (l *SyncList) Walk(fn func(int) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.q.Walk(fn)
}

func (l *SyncList) Destroy() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Destroy()
}

func (l *SyncList) inspect(fn func(int, bool, bool) bool) (bool, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if in, ok := l.q.(Inspector); ok {
		return in.inspect(fn)
	}
	/* unknown inner list, report ends from size only */
	n := l.q.Len()
	var i int
	l.q.Walk(func(v int) bool {
		i++
		return fn(v, i < n, i == n)
	})
	return n > 0, n > 0
}
