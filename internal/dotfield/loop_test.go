package dotfield

import (
	"math/rand"
	"testing"
)

func TestFrameQueueDefersNestedRequests(t *testing.T) {
	var q FrameQueue
	var order []int

	q.RequestFrame(func() {
		order = append(order, 1)
		q.RequestFrame(func() { order = append(order, 3) })
	})
	q.RequestFrame(func() { order = append(order, 2) })

	q.RunFrame()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("Expected [1 2] after first frame, got %v", order)
	}
	if q.Pending() != 1 {
		t.Fatalf("Expected 1 pending callback, got %d", q.Pending())
	}

	q.RunFrame()
	if len(order) != 3 || order[2] != 3 {
		t.Errorf("Expected [1 2 3] after second frame, got %v", order)
	}
}

func TestFrameQueueCancel(t *testing.T) {
	var q FrameQueue
	ran := false
	id := q.RequestFrame(func() { ran = true })
	q.CancelFrame(id)
	q.CancelFrame(id)
	q.CancelFrame(9999)
	q.RunFrame()

	if ran {
		t.Error("Expected cancelled callback not to run")
	}
	if id == 0 {
		t.Error("Expected non-zero frame id")
	}
}

func TestLoopRearmsEveryFrame(t *testing.T) {
	var q FrameQueue
	f := New(DefaultParams(), rand.New(rand.NewSource(1)))
	f.Layout(100, 100)
	r := &recorder{}
	l := NewLoop(f, &q, func() Surface { return r })

	l.Start()
	l.Start()
	if q.Pending() != 1 {
		t.Fatalf("Expected a single scheduled frame, got %d", q.Pending())
	}

	for i := 0; i < 5; i++ {
		q.RunFrame()
		if q.Pending() != 1 {
			t.Fatalf("Frame %d: expected exactly one callback in flight, got %d", i, q.Pending())
		}
	}
	if l.Ticks() != 5 || r.clears != 5 {
		t.Errorf("Expected 5 ticks and clears, got %d and %d", l.Ticks(), r.clears)
	}
}

func TestLoopSkipsMissingSurface(t *testing.T) {
	var q FrameQueue
	f := New(DefaultParams(), rand.New(rand.NewSource(1)))
	f.Layout(100, 100)

	var surface Surface
	l := NewLoop(f, &q, func() Surface { return surface })
	l.Start()

	q.RunFrame()
	q.RunFrame()
	if l.Ticks() != 0 {
		t.Errorf("Expected no ticks without a surface, got %d", l.Ticks())
	}
	if !l.Running() || q.Pending() != 1 {
		t.Fatalf("Expected loop to keep rescheduling, running=%v pending=%d", l.Running(), q.Pending())
	}

	surface = &recorder{}
	q.RunFrame()
	if l.Ticks() != 1 {
		t.Errorf("Expected 1 tick once a surface exists, got %d", l.Ticks())
	}
}

func TestLoopStopIsIdempotent(t *testing.T) {
	var q FrameQueue
	f := New(DefaultParams(), rand.New(rand.NewSource(1)))
	l := NewLoop(f, &q, func() Surface { return &recorder{} })

	l.Stop()
	if q.Pending() != 0 {
		t.Fatalf("Expected nothing scheduled, got %d", q.Pending())
	}

	l.Start()
	q.RunFrame()
	l.Stop()
	l.Stop()
	if l.Running() {
		t.Error("Expected loop to be stopped")
	}
	if q.Pending() != 0 {
		t.Errorf("Expected no pending callback after stop, got %d", q.Pending())
	}

	q.RunFrame()
	if q.Pending() != 0 {
		t.Errorf("Expected stopped loop not to re-arm, got %d pending", q.Pending())
	}
}

func TestLoopStopFromInsideFrame(t *testing.T) {
	var q FrameQueue
	f := New(DefaultParams(), rand.New(rand.NewSource(1)))
	f.Layout(50, 50)

	var l *Loop
	l = NewLoop(f, &q, func() Surface {
		l.Stop()
		return nil
	})
	l.Start()
	q.RunFrame()

	if l.Running() {
		t.Error("Expected loop to report stopped")
	}
	if q.Pending() != 0 {
		t.Errorf("Expected frame stopped mid-run not to re-arm, got %d pending", q.Pending())
	}
}
