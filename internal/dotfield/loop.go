package dotfield

// FrameID identifies a requested frame callback. Zero is never issued.
type FrameID uint64

// Scheduler runs callbacks once on the next display frame.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a Scheduler pumped by the host once per rendered frame.
type FrameQueue struct {
	next    FrameID
	pending []frameRequest
}

// RequestFrame queues fn for the next RunFrame.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending = append(q.pending, frameRequest{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a pending request. Unknown or already run ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// RunFrame invokes the callbacks queued so far. Callbacks requested while
// running are kept for the following frame.
func (q *FrameQueue) RunFrame() {
	batch := q.pending
	q.pending = nil
	for _, r := range batch {
		r.fn()
	}
}

// Loop drives a Field from a Scheduler, re-arming itself every frame until
// stopped.
type Loop struct {
	field   *Field
	sched   Scheduler
	acquire func() Surface

	frame   FrameID
	running bool
	ticks   int
}

// NewLoop returns a stopped loop. acquire is asked for a surface on every
// frame and may return nil while none is available.
func NewLoop(field *Field, sched Scheduler, acquire func() Surface) *Loop {
	return &Loop{
		field:   field,
		sched:   sched,
		acquire: acquire,
	}
}

// Start schedules the first frame. Starting a running loop does nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.frame = l.sched.RequestFrame(l.run)
}

// Stop cancels the pending frame. It is safe to call at any time.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.sched.CancelFrame(l.frame)
	l.frame = 0
}

// Running reports whether a frame is scheduled.
func (l *Loop) Running() bool { return l.running }

// Ticks returns how many frames actually rendered.
func (l *Loop) Ticks() int { return l.ticks }

func (l *Loop) run() {
	if !l.running {
		return
	}
	if s := l.acquire(); s != nil {
		l.field.Tick(s)
		l.ticks++
	}
	if l.running {
		l.frame = l.sched.RequestFrame(l.run)
	}
}
