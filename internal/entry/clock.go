package entry

import "time"

//go:generate mockgen -source=clock.go -destination=clock_mock.go -package=entry
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
