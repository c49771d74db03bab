package list

import (
	"fmt"
	"math"
)

const nilIndex int32 = -1

// maxArenaSlots bound live nodes of an ArenaList by its int32 links
var maxArenaSlots = math.MaxInt32

type slot struct {
	val  int
	next int32
}

// ArenaList keeps nodes in one slice linked by index,
// popped slots go to a free list and are reused by later appends.
// It holds at most math.MaxInt32 live nodes, Append panics beyond that.
type ArenaList struct {
	slots []slot
	head  int32
	rear  int32
	free  int32
	size  int
}

// NewArenaList create empty list, capacityHint preallocate slots
func NewArenaList(capacityHint int) *ArenaList {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &ArenaList{
		slots: make([]slot, 0, capacityHint),
		head:  nilIndex,
		rear:  nilIndex,
		free:  nilIndex,
	}
}

func (l *ArenaList) alloc(v int) int32 {
	if l.free != nilIndex {
		idx := l.free
		l.free = l.slots[idx].next
		l.slots[idx] = slot{val: v, next: nilIndex}
		return idx
	}
	if len(l.slots) >= maxArenaSlots {
		panic(fmt.Sprintf("list: arena is full with %d nodes", len(l.slots)))
	}
	l.slots = append(l.slots, slot{val: v, next: nilIndex})
	return int32(len(l.slots) - 1)
}

func (l *ArenaList) release(idx int32) {
	l.slots[idx] = slot{next: l.free}
	l.free = idx
}

// Append value at tail
func (l *ArenaList) Append(v int) {
	idx := l.alloc(v)
	if l.rear == nilIndex {
		l.head = idx
		l.rear = idx
	} else {
		l.slots[l.rear].next = idx
		l.rear = idx
	}
	l.size++
}

// PopFirstElement remove head, ErrEmptyList if nothing in list
func (l *ArenaList) PopFirstElement() (int, error) {
	if l.head == nilIndex {
		return 0, ErrEmptyList
	}
	idx := l.head
	v := l.slots[idx].val
	if idx == l.rear {
		l.head = nilIndex
		l.rear = nilIndex
	} else {
		l.head = l.slots[idx].next
	}
	l.release(idx)
	l.size--
	return v, nil
}

// Len of list
func (l *ArenaList) Len() int {
	return l.size
}

// Cap of arena, including free slots
func (l *ArenaList) Cap() int {
	return len(l.slots)
}

// Walk values from head
func (l *ArenaList) Walk(fn func(int) bool) {
	for idx := l.head; idx != nilIndex; idx = l.slots[idx].next {
		if !fn(l.slots[idx].val) {
			return
		}
	}
}

// Destroy release all slots from head, the arena memory is kept for reuse
func (l *ArenaList) Destroy() int {
	var released int
	idx := l.head
	for idx != nilIndex {
		next := l.slots[idx].next
		l.release(idx)
		idx = next
		released++
	}
	l.head = nilIndex
	l.rear = nilIndex
	l.size = 0
	return released
}

func (l *ArenaList) inspect(fn func(int, bool, bool) bool) (bool, bool) {
	for idx := l.head; idx != nilIndex; idx = l.slots[idx].next {
		if !fn(l.slots[idx].val, l.slots[idx].next != nilIndex, idx == l.rear) {
			break
		}
	}
	return l.head != nilIndex, l.rear != nilIndex
}
