package engine

import "time"

// TimeProvider supplies the clock the frame loop derives dt from.
// The default implementation reads the real monotonic clock; tests inject
// deterministic providers.
type TimeProvider interface {
	Now() time.Time
}

type monotonicTime struct{}

// NewTimeProvider returns the real monotonic time provider
func NewTimeProvider() TimeProvider {
	return monotonicTime{}
}

// Now returns the current time with monotonic clock reading
func (monotonicTime) Now() time.Time {
	return time.Now()
}
