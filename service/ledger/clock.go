package ledger

import "time"

// Clock ...
type Clock interface {
	Now() time.Time
}

type realClock struct {
}

// NewClock returns the system clock in UTC
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}
