package field

import "sync"

// FrameQueue is a Scheduler whose frames run when the owner calls Step.
// The zero value is ready to use.
type FrameQueue struct {
	mu    sync.Mutex
	next  FrameID
	order []FrameID
	fns   map[FrameID]func()
}

// RequestFrame queues fn for the next Step.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.fns == nil {
		q.fns = make(map[FrameID]func())
	}
	q.next++
	id := q.next
	q.order = append(q.order, id)
	q.fns[id] = fn
	return id
}

// CancelFrame drops a queued callback. Unknown ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.fns, id)
}

// Step runs the callbacks queued before the call and returns how many ran.
// Callbacks requested while stepping wait for the next Step.
func (q *FrameQueue) Step() int {
	q.mu.Lock()
	order := q.order
	q.order = nil
	q.mu.Unlock()

	ran := 0
	for _, id := range order {
		q.mu.Lock()
		fn, ok := q.fns[id]
		delete(q.fns, id)
		q.mu.Unlock()
		if !ok {
			continue
		}
		fn()
		ran++
	}
	return ran
}

// Pending returns the number of queued, uncancelled callbacks.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.fns)
}
