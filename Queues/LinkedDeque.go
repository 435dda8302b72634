package Queues

type dNode[T any] struct {
	v          T
	prev, next *dNode[T]
}

// LinkedDeque is a doubly linked list. Push and Pop use it as a FIFO queue
// from back to front. The zero value is an empty deque ready to use.
type LinkedDeque[T any] struct {
	head, tail *dNode[T]
	sz         uint
}

func MakeLinkedDeque[T any]() Deque[T] {
	return new(LinkedDeque[T])
}

func (u *LinkedDeque[T]) Empty() bool {
	return u.sz == 0
}

func (u *LinkedDeque[T]) Size() uint {
	return u.sz
}

func (u *LinkedDeque[T]) PushFront(item T) {
	n := &dNode[T]{v: item, next: u.head}
	if u.head == nil {
		u.tail = n
	} else {
		u.head.prev = n
	}
	u.head = n
	u.sz++
}

func (u *LinkedDeque[T]) PushBack(item T) {
	n := &dNode[T]{v: item, prev: u.tail}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.next = n
	}
	u.tail = n
	u.sz++
}

// PopFront removes the first item. Both links of the removed node are cut so
// that it doesn't keep the rest of the list reachable.
func (u *LinkedDeque[T]) PopFront() (T, error) {
	n := u.head
	if n == nil {
		return *new(T), &EmptyQueueError{}
	}
	if u.head = n.next; u.head == nil {
		u.tail = nil
	} else {
		u.head.prev = nil
	}
	n.next = nil
	u.sz--
	return n.v, nil
}

func (u *LinkedDeque[T]) PopBack() (T, error) {
	n := u.tail
	if n == nil {
		return *new(T), &EmptyQueueError{}
	}
	if u.tail = n.prev; u.tail == nil {
		u.head = nil
	} else {
		u.tail.next = nil
	}
	n.prev = nil
	u.sz--
	return n.v, nil
}

func (u *LinkedDeque[T]) Front() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	return u.head.v, true
}

func (u *LinkedDeque[T]) Back() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	return u.tail.v, true
}

func (u *LinkedDeque[T]) Push(item T) {
	u.PushBack(item)
}

func (u *LinkedDeque[T]) Pop() (T, error) {
	return u.PopFront()
}

// Peek returns the zero value of T when empty.
func (u *LinkedDeque[T]) Peek() T {
	v, _ := u.Front()
	return v
}
