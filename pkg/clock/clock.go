package clock

import "time"

// Timer is a pending callback that can be cancelled before it fires.
type Timer interface {
	Stop() bool
}

// Clock abstracts wall-clock reads and timer scheduling so rule conditions
// and expiry paths stay testable.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (System) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Fixed always reports the same instant. Timers still run on the real
// clock. Intended for tests.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time { return f.At }

func (f Fixed) AfterFunc(d time.Duration, fn func()) Timer { return time.AfterFunc(d, fn) }
