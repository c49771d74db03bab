package list

type node struct {
	val  int
	next *node
}

// LinkedList singly linked list with head and rear pointer, zero value is an empty list
type LinkedList struct {
	size int
	head *node
	rear *node
}

// NewLinkedList create empty list
func NewLinkedList() *LinkedList {
	return &LinkedList{}
}

// Append value at tail in O(1)
func (l *LinkedList) Append(v int) {
	n := &node{
		val: v,
	}
	if l.rear == nil {
		l.head = n
		l.rear = n
	} else {
		l.rear.next = n
		l.rear = n
	}
	l.size++
}

// PopFirstElement remove head in O(1), ErrEmptyList if nothing in list
func (l *LinkedList) PopFirstElement() (int, error) {
	if l.head == nil {
		return 0, ErrEmptyList
	}
	n := l.head
	if l.head == l.rear {
		l.head = nil
		l.rear = nil
	} else {
		l.head = n.next
	}
	n.next = nil
	l.size--
	return n.val, nil
}

// Len of list
func (l *LinkedList) Len() int {
	return l.size
}

// Walk values from head
func (l *LinkedList) Walk(fn func(int) bool) {
	for curr := l.head; curr != nil; curr = curr.next {
		if !fn(curr.val) {
			return
		}
	}
}

// Destroy unlink every node starting from head
func (l *LinkedList) Destroy() int {
	var released int
	curr := l.head
	for curr != nil {
		next := curr.next
		curr.next = nil
		curr = next
		released++
	}
	l.head = nil
	l.rear = nil
	l.size = 0
	return released
}

func (l *LinkedList) inspect(fn func(int, bool, bool) bool) (bool, bool) {
	for curr := l.head; curr != nil; curr = curr.next {
		if !fn(curr.val, curr.next != nil, curr == l.rear) {
			break
		}
	}
	return l.head != nil, l.rear != nil
}
