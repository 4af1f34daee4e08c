package shooter

import "time"

// Clock is the monotonic time source the simulation measures cadences
// against. time.Time values from time.Now carry a monotonic reading, so
// Sub between them is immune to wall-clock changes.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Random is a uniform source of floats in [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// uniform draws a float in [0, upper).
func uniform(r Random, upper float64) float64 {
	return r.Float64() * upper
}
