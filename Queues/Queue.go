package Queues

// Queue is a FIFO queue. Pop on an empty queue returns *EmptyQueueError.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue kept in a growable ring buffer.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the buffer to the current size.
	Shrink()
	//Clear removes all items but keeps the buffer.
	Clear()
	Size() uint
}

// Deque is a Queue that can also be used from both ends.
type Deque[T any] interface {
	Queue[T]
	PushFront(item T)
	PushBack(item T)
	PopFront() (T, error)
	PopBack() (T, error)
	//Front and Back return false as the second value when the Deque is empty.
	Front() (T, bool)
	Back() (T, bool)
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
