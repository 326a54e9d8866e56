// File: internal/humanoid/random.go
package humanoid

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomSource is the side channel every jitter and delay is drawn from.
// *rand.Rand satisfies it; tests inject seeded or scripted sources.
type RandomSource interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Intn returns a pseudo-random number in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// NewRandomSource returns a *rand.Rand seeded with seed, or with the current
// time when seed is zero.
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// uniform samples uniformly from [lo, hi].
func uniform(rng RandomSource, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// intRange samples an integer uniformly from the inclusive range [lo, hi].
func intRange(rng RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// DurationRange is a closed interval of seconds used to sample delays and idle
// durations uniformly.
type DurationRange struct {
	Min float64 `json:"min" yaml:"min" mapstructure:"min"`
	Max float64 `json:"max" yaml:"max" mapstructure:"max"`
}

// Seconds builds a DurationRange from a min and max in seconds.
func Seconds(min, max float64) DurationRange {
	return DurationRange{Min: min, Max: max}
}

// Validate checks that the range is non-negative and ordered.
func (r DurationRange) Validate() error {
	if r.Min < 0 || r.Max < 0 {
		return fmt.Errorf("%w: duration range [%g, %g] must be non-negative", ErrInvalidArgument, r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: duration range min %g exceeds max %g", ErrInvalidArgument, r.Min, r.Max)
	}
	return nil
}

// SampleSeconds draws a value in seconds uniformly from the range.
func (r DurationRange) SampleSeconds(rng RandomSource) float64 {
	return uniform(rng, r.Min, r.Max)
}

// Sample draws a duration uniformly from the range.
func (r DurationRange) Sample(rng RandomSource) time.Duration {
	return secondsToDuration(r.SampleSeconds(rng))
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
