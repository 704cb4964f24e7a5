package remoteid

import "time"

// Clock supplies the wall-clock time written into Location and System messages
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the host clock
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always reports t
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
