package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/shift48/internal/core"
)

// manualScheduler collects scheduled callbacks and fires them on demand so
// queue tests never depend on real time.
type manualScheduler struct {
	pending []func()
}

func (s *manualScheduler) Schedule(_ time.Duration, fn func()) {
	s.pending = append(s.pending, fn)
}

// Fire runs the oldest pending callback. Returns false if none is pending.
func (s *manualScheduler) Fire() bool {
	if len(s.pending) == 0 {
		return false
	}
	fn := s.pending[0]
	s.pending = s.pending[1:]
	fn()
	return true
}

func TestQueuePacesEffectiveMoves(t *testing.T) {
	sched := &manualScheduler{}
	var applied []core.Direction
	q := NewMoveQueue(8, time.Millisecond, sched, func(dir core.Direction) bool {
		applied = append(applied, dir)
		return true
	})

	var completions []bool
	done := func(changed bool) { completions = append(completions, changed) }

	q.Enqueue(core.DirLeft, done)
	q.Enqueue(core.DirRight, done)
	q.Enqueue(core.DirUp, done)

	// Only the first command runs before the pacing delay elapses.
	if len(applied) != 1 {
		t.Fatalf("applied %d moves before timer, want 1", len(applied))
	}
	if len(sched.pending) != 1 {
		t.Fatalf("pending timers = %d, want 1", len(sched.pending))
	}

	sched.Fire()
	if len(applied) != 2 {
		t.Fatalf("applied %d moves after first timer, want 2", len(applied))
	}

	sched.Fire()
	if len(applied) != 3 {
		t.Fatalf("applied %d moves after second timer, want 3", len(applied))
	}

	// Queue is empty: the last timer returns it to idle without scheduling.
	sched.Fire()
	if len(sched.pending) != 0 {
		t.Errorf("pending timers after drain = %d, want 0", len(sched.pending))
	}

	for i, changed := range completions {
		if !changed {
			t.Errorf("completion %d = false, want true", i)
		}
	}
	if len(completions) != 3 {
		t.Errorf("completions = %d, want 3", len(completions))
	}
}

func TestQueueDrainsIneffectiveMovesWithoutDelay(t *testing.T) {
	sched := &manualScheduler{}
	applied := 0
	q := NewMoveQueue(8, time.Millisecond, sched, func(core.Direction) bool {
		applied++
		return false
	})

	completions := 0
	for i := 0; i < 3; i++ {
		q.Enqueue(core.DirLeft, func(changed bool) {
			if changed {
				t.Error("ineffective move completed with changed=true")
			}
			completions++
		})
	}

	// Wall-pushes cost no latency: everything ran synchronously.
	if applied != 3 || completions != 3 {
		t.Fatalf("applied=%d completions=%d, want 3 and 3", applied, completions)
	}
	if len(sched.pending) != 0 {
		t.Errorf("ineffective moves scheduled a timer")
	}
}

func TestQueueEffectiveThenIneffective(t *testing.T) {
	sched := &manualScheduler{}
	results := []bool{true, false, false}
	applied := 0
	q := NewMoveQueue(8, time.Millisecond, sched, func(core.Direction) bool {
		r := results[applied]
		applied++
		return r
	})

	q.Enqueue(core.DirLeft, nil)
	q.Enqueue(core.DirLeft, nil)
	q.Enqueue(core.DirLeft, nil)

	if applied != 1 {
		t.Fatalf("applied=%d before timer, want 1", applied)
	}

	// The two ineffective moves drain in the same cycle once the timer fires.
	sched.Fire()
	if applied != 3 {
		t.Fatalf("applied=%d after timer, want 3", applied)
	}
	if len(sched.pending) != 0 {
		t.Errorf("ineffective tail scheduled another timer")
	}
}

func TestQueueBackpressureDropsExcessRequests(t *testing.T) {
	const capacity = 3
	sched := &manualScheduler{}
	q := NewMoveQueue(capacity, time.Millisecond, sched, func(core.Direction) bool {
		return true
	})

	// First move flips the queue to scheduled; everything after waits.
	q.Enqueue(core.DirLeft, nil)

	completions := 0
	lastCompleted := false
	for i := 0; i < capacity; i++ {
		q.Enqueue(core.DirLeft, func(bool) { completions++ })
	}
	q.Enqueue(core.DirLeft, func(bool) { lastCompleted = true })

	if got := q.Len(); got != capacity {
		t.Fatalf("queue length = %d, want %d", got, capacity)
	}

	for sched.Fire() {
	}

	if completions != capacity {
		t.Errorf("completions = %d, want %d", completions, capacity)
	}
	if lastCompleted {
		t.Error("request beyond capacity received a completion call")
	}
}

func TestQueueNilCompletion(t *testing.T) {
	q := NewMoveQueue(2, time.Millisecond, &manualScheduler{}, func(core.Direction) bool {
		return false
	})
	// Must not panic.
	q.Enqueue(core.DirLeft, nil)
}
