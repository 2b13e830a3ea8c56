package domain

import "time"

// CurrentTimeProvider abstracts the clock for deterministic testing.
type CurrentTimeProvider interface {
	Now() time.Time
}
