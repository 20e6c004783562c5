package session

import "time"

// CancelFunc stops a scheduled callback from firing. Safe to call after the
// callback has already run.
type CancelFunc func()

// Scheduler issues delayed callbacks. Production code uses TimerScheduler;
// tests substitute a manual implementation to drive time deterministically.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) CancelFunc
}

// TimerScheduler schedules callbacks on real timers.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) CancelFunc {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}
