package port

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. Stopping a fired or stopped
	// timer is a no-op and reports false.
	Stop() bool
}

// Scheduler fires callbacks after a delay on the host's UI loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
	Now() time.Time
}
