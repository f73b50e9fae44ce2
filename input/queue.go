package input

import (
	"sync"
	"sync/atomic"
)

// DefaultQueueCapacity is the initial ring size of a Queue. The ring grows on
// demand, so pushes never block and never drop events.
const DefaultQueueCapacity = 64

// Queue is an unbounded FIFO of events, safe for many producers and many
// consumers. Push and Pop hold the lock only briefly, for an O(1) slot
// update. When the ring is full it doubles, copying under the lock, so growth
// is amortized O(1) per push. A slow consumer never stalls the logic thread.
type Queue struct {
	mu     sync.Mutex
	buf    []Event
	head   int
	size   int
	closed bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{buf: make([]Event, DefaultQueueCapacity)}
}

// PushEvent appends ev. It returns false if the queue was closed.
func (q *Queue) PushEvent(ev Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = ev
	q.size++
	return true
}

// PopEvent removes and returns the oldest event; ok is false when empty.
func (q *Queue) PopEvent() (ev Event, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.size == 0 {
		return nil, false
	}
	ev = q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return ev, true
}

// Drain appends every pending event to dst in FIFO order and empties the queue.
func (q *Queue) Drain(dst []Event) []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size > 0 {
		dst = append(dst, q.buf[q.head])
		q.buf[q.head] = nil
		q.head = (q.head + 1) % len(q.buf)
		q.size--
	}
	q.head = 0
	return dst
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Close stops the queue from accepting events. Pending events can still be
// popped. Controllers drop closed queues on their next fan-out.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}

// Closed reports whether Close was called.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// grow doubles the ring, unwrapping it so head restarts at 0. Caller holds mu.
func (q *Queue) grow() {
	n := len(q.buf) * 2
	if n == 0 {
		n = DefaultQueueCapacity
	}
	buf := make([]Event, n)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}

// Listener is the consumer side of a queue. The zero value listens to nothing.
type Listener struct {
	queue atomic.Pointer[Queue]
}

// ListenInputQueue points the listener at q. Passing nil detaches it.
func (l *Listener) ListenInputQueue(q *Queue) {
	l.queue.Store(q)
}

// ConsumeInputEvent pops the next event from the listened queue.
func (l *Listener) ConsumeInputEvent() (Event, bool) {
	q := l.queue.Load()
	if q == nil {
		return nil, false
	}
	return q.PopEvent()
}
