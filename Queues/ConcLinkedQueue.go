package Queues

import (
	"sync/atomic"
)

type cNode[T any] struct {
	v  T
	nx atomic.Pointer[cNode[T]]
}

// syncLinkedQ is a lock-free FIFO queue after Michael and Scott. head is a
// sentinel; the first item is its successor. tail may lag one node behind the
// real last node, and whoever notices moves it forward.
type syncLinkedQ[T any] struct {
	head, tail atomic.Pointer[cNode[T]]
}

// MakeConcurrentLinkedQueue returns a Queue that is safe for concurrent use
// without locks.
func MakeConcurrentLinkedQueue[T any]() Queue[T] {
	u := new(syncLinkedQ[T])
	s := new(cNode[T])
	u.head.Store(s)
	u.tail.Store(s)
	return u
}

func (u *syncLinkedQ[T]) Push(item T) {
	n := &cNode[T]{v: item}
	for {
		tail := u.tail.Load()
		if next := tail.nx.Load(); next != nil {
			u.tail.CompareAndSwap(tail, next)
		} else if tail.nx.CompareAndSwap(nil, n) {
			u.tail.CompareAndSwap(tail, n)
			return
		}
	}
}

func (u *syncLinkedQ[T]) Pop() (T, error) {
	for {
		head, tail := u.head.Load(), u.tail.Load()
		next := head.nx.Load()
		if next == nil {
			return *new(T), &EmptyQueueError{}
		}
		if head == tail {
			u.tail.CompareAndSwap(tail, next)
			continue
		}
		v := next.v
		if u.head.CompareAndSwap(head, next) {
			return v, nil
		}
	}
}

// Peek returns the zero value of T when empty.
func (u *syncLinkedQ[T]) Peek() T {
	if next := u.head.Load().nx.Load(); next != nil {
		return next.v
	}
	return *new(T)
}

func (u *syncLinkedQ[T]) Empty() bool {
	return u.head.Load().nx.Load() == nil
}
