package list

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyList returned when pop from a list holding nothing
var ErrEmptyList = errors.New("list: pop from empty list")

// Queue is a FIFO sequence of integers
type Queue interface {
	// Append value at tail
	Append(int)
	// PopFirstElement remove head and return its value
	PopFirstElement() (int, error)
	// Len of list
	Len() int
	// Walk values from head to tail until fn return false
	Walk(fn func(int) bool)
	// Destroy release all nodes, return count of released nodes
	Destroy() int
}

// Kind of list implementation
type Kind string

const (
	KindPointer Kind = "pointer"
	KindArena   Kind = "arena"
	KindSync    Kind = "sync"
)

// Kinds return all implementations
func Kinds() []Kind {
	return []Kind{KindPointer, KindArena, KindSync}
}

// New create an empty list of kind
func New(kind Kind) (Queue, error) {
	switch Kind(strings.ToLower(string(kind))) {
	case KindPointer:
		return NewLinkedList(), nil
	case KindArena:
		return NewArenaList(0), nil
	case KindSync:
		return NewSyncList(NewLinkedList()), nil
	default:
		return nil, fmt.Errorf("list: unknown kind %q", kind)
	}
}

// Values copy list content in order
func Values(q Queue) []int {
	out := make([]int, 0, q.Len())
	q.Walk(func(v int) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Inspector expose internal links of a list
type Inspector interface {
	Len() int
	// inspect visit each node from head: value, whether it has next, whether it is tail.
	// hasHead and hasTail report the list ends.
	inspect(fn func(v int, hasNext, isTail bool) bool) (hasHead, hasTail bool)
}

// CheckInvariants verify size/head/tail consistency
func CheckInvariants(q Inspector) error {
	size := q.Len()
	if size < 0 {
		return fmt.Errorf("list: negative size %d", size)
	}
	var visited int
	var tailSeen, tailHasNext bool
	var tailPos int
	hasHead, hasTail := q.inspect(func(v int, hasNext, isTail bool) bool {
		visited++
		if isTail {
			tailSeen = true
			tailHasNext = hasNext
			tailPos = visited
		}
		/* cycle guard */
		return visited <= size
	})
	if size == 0 {
		if hasHead || hasTail {
			return fmt.Errorf("list: empty but head=%v tail=%v", hasHead, hasTail)
		}
		return nil
	}
	if !hasHead || !hasTail {
		return fmt.Errorf("list: size %d but head=%v tail=%v", size, hasHead, hasTail)
	}
	if visited != size {
		return fmt.Errorf("list: size %d but %d nodes reachable from head", size, visited)
	}
	if !tailSeen || tailPos != size {
		return fmt.Errorf("list: tail is not the last reachable node")
	}
	if tailHasNext {
		return errors.New("list: tail has a next link")
	}
	return nil
}
