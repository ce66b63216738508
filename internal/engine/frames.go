package engine

// FrameID identifies a requested frame callback.
type FrameID uint64

// Scheduler is the host's animation-frame primitive.
type Scheduler interface {
	// RequestFrame schedules fn to run on the next frame.
	RequestFrame(fn func()) FrameID
	// CancelFrame drops a pending request. Unknown ids are ignored.
	CancelFrame(id FrameID)
}

// FrameQueue is a Scheduler driven by an explicit RunFrame call, once per
// host frame. Callbacks requested while a frame runs wait for the next one.
// It is not safe for concurrent use.
type FrameQueue struct {
	next    FrameID
	pending map[FrameID]func()
	order   []FrameID
}

var _ Scheduler = (*FrameQueue)(nil)

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]func())}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending[q.next] = fn
	q.order = append(q.order, q.next)
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
}

// Pending reports how many callbacks are waiting.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// RunFrame runs every callback pending when it was called, in request
// order, and returns how many ran. A callback cancelled by an earlier one in
// the same frame does not run.
func (q *FrameQueue) RunFrame() int {
	batch := q.order
	q.order = nil
	ran := 0
	for _, id := range batch {
		fn, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		fn()
		ran++
	}
	return ran
}
