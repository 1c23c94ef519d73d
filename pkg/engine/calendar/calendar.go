// Package calendar provides the turn-based game clock.
// One turn is one second of game time.
package calendar

// TimePoint is an absolute game time, counted in turns since the game started
type TimePoint int64

// Duration is a span of game time in turns
type Duration int64

// BeforeTimeStarts is earlier than any time point a running game can produce.
// It is used as the initial value of cooldown gates so the first check always passes.
const BeforeTimeStarts TimePoint = -1

// Turn is the first time point of a new game
const Turn TimePoint = 0

// Seconds returns a duration of n seconds
func Seconds(n int) Duration {
	return Duration(n)
}

// Minutes returns a duration of n minutes
func Minutes(n int) Duration {
	return Duration(n) * 60
}

// Add returns the time point d turns after t
func (t TimePoint) Add(d Duration) TimePoint {
	return t + TimePoint(d)
}

// Before reports whether t is strictly earlier than other
func (t TimePoint) Before(other TimePoint) bool {
	return t < other
}

// Clock is a mutable game clock advanced by the turn loop
type Clock struct {
	now TimePoint
}

// NewClock creates a clock starting at the given time point
func NewClock(start TimePoint) *Clock {
	return &Clock{now: start}
}

// Now returns the current time point
func (c *Clock) Now() TimePoint {
	return c.now
}

// Advance moves the clock forward by d; negative durations are ignored
func (c *Clock) Advance(d Duration) {
	if d > 0 {
		c.now = c.now.Add(d)
	}
}
