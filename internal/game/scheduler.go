package game

import "time"

// Scheduler arranges for a callback to run once after a delay. The move
// queue uses it to pace effective moves; injecting it keeps queue tests
// deterministic. Cancellation is never needed: the queue never replaces a
// pending schedule before it fires.
type Scheduler interface {
	Schedule(d time.Duration, fn func())
}

// timerScheduler schedules on the process clock.
type timerScheduler struct{}

func (timerScheduler) Schedule(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// NewTimerScheduler returns the production Scheduler backed by time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}
