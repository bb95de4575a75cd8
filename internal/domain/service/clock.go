package service

import "time"

// Clock supplies the current time so lifecycle rules can be tested at fixed instants.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// NewSystemClock returns the wall clock as a Clock.
func NewSystemClock() Clock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now()
}
