package Queues

// Queue is a FIFO container. Implementations in this package aren't safe
// for concurrent use.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	//Peek at the oldest item without removing it. Zero value if empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing array to fit the current items.
	Shrink()
	//Clear all items, keeping the backing array.
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
