package probe

import (
	"github.com/qjpcpu/benchprobe/list"
)

// SumSquares return 1*1 + 2*2 + ... + n*n
func SumSquares(n int) int {
	sum := 0
	for i := 1; i <= n; i++ {
		sum = sum + i*i
	}
	return sum
}

// Recurse call itself depth times
func Recurse(depth int) {
	if depth > 0 {
		Recurse(depth - 1)
	}
}

// TraverseArray fill an array with 0..size-1 and read it back,
// return the last element read or -1 for empty array
func TraverseArray(size int) int {
	if size <= 0 {
		return -1
	}
	array := make([]int, size)
	for i := 0; i < size; i++ {
		array[i] = i
	}
	temp := -1
	for i := 0; i < size; i++ {
		temp = array[i]
	}
	return temp
}

// LinkedListInsertTraverse append 0..numValues-1 then pop them all
func LinkedListInsertTraverse(q list.Queue, numValues int) error {
	for i := 0; i < numValues; i++ {
		q.Append(i)
	}
	for i := 0; i < numValues; i++ {
		if _, err := q.PopFirstElement(); err != nil {
			return err
		}
	}
	return nil
}

// LinkedListSelfCheck fill list with 0..length-1, every pop should return its insert index
// and a final pop should report an empty list
func LinkedListSelfCheck(q list.Queue, length int) bool {
	for i := 0; i < length; i++ {
		q.Append(i)
	}
	correct := q.Len() == length
	for i := 0; i < length; i++ {
		element, err := q.PopFirstElement()
		correct = correct && err == nil && element == i
	}
	_, err := q.PopFirstElement()
	return correct && err == list.ErrEmptyList && q.Len() == 0
}
