package game

import (
	"sync"
	"time"

	"github.com/vovakirdan/shift48/internal/core"
)

// moveCommand is one queued move request: a direction plus its completion
// notification. It lives from enqueue until the processing cycle pops it.
type moveCommand struct {
	dir  core.Direction
	done func(changed bool)
}

// MoveQueue serializes move requests into single board mutations. It is a
// two-state machine: idle, or scheduled with a pacing timer pending.
// Ineffective moves (nothing slid) are drained back to back with no delay;
// after each effective move the queue waits out the pacing delay so the
// renderer can finish animating before the next mutation lands.
//
// The queue is bounded: requests arriving while it already holds capacity
// pending commands are dropped silently, backpressure rather than error.
// A dropped request never receives a completion call.
type MoveQueue struct {
	mu        sync.Mutex
	pending   []moveCommand
	capacity  int
	delay     time.Duration
	scheduled bool
	sched     Scheduler
	apply     func(core.Direction) bool
}

// NewMoveQueue creates a queue that applies moves through apply. The apply
// function must be pure in its control flow: synchronous, terminating and
// returning whether the board changed.
func NewMoveQueue(capacity int, delay time.Duration, sched Scheduler, apply func(core.Direction) bool) *MoveQueue {
	if sched == nil {
		sched = NewTimerScheduler()
	}
	return &MoveQueue{
		capacity: capacity,
		delay:    delay,
		sched:    sched,
		apply:    apply,
	}
}

// Enqueue appends a move request and, if no pacing timer is pending, starts
// a processing cycle immediately. done may be nil; otherwise it is invoked
// exactly once with whether the move changed the board, unless the request
// is dropped because the queue is full.
func (q *MoveQueue) Enqueue(dir core.Direction, done func(changed bool)) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) >= q.capacity {
		return
	}
	q.pending = append(q.pending, moveCommand{dir: dir, done: done})

	if !q.scheduled {
		q.drainLocked()
	}
}

// Len returns the number of commands waiting in the queue.
func (q *MoveQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// drainLocked runs one processing cycle. Ineffective moves complete and the
// cycle keeps popping; the first effective move completes, flips the queue
// to scheduled and arms the pacing timer. Must be called with mu held.
func (q *MoveQueue) drainLocked() {
	for len(q.pending) > 0 {
		cmd := q.pending[0]
		q.pending = q.pending[1:]

		changed := q.apply(cmd.dir)
		if cmd.done != nil {
			cmd.done(changed)
		}

		if changed {
			q.scheduled = true
			q.sched.Schedule(q.delay, q.timerFired)
			return
		}
	}
}

// timerFired is the pacing timer callback: back to idle, then drain whatever
// queued up during the delay.
func (q *MoveQueue) timerFired() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.scheduled = false
	q.drainLocked()
}
