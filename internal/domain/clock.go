package domain

import "time"

// Clock supplies the current instant for time-dependent business rules
// (event status, registration deadlines). Injecting it keeps services
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }
