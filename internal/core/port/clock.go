package port

import "time"

// Clock supplies the current time so expiry logic stays testable
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time {
	return f()
}
