// File: internal/humanoid/config.go
package humanoid

import (
	"fmt"
)

// Config holds the parameters defining the behavior of the simulation.
// All ranges are in seconds unless noted otherwise.
type Config struct {
	// Rng overrides the random source. When nil, one is created from Seed.
	Rng RandomSource
	// Seed for the default random source. Zero means time-seeded.
	Seed int64

	// InitialPosition is where the pointer is assumed to be before the first movement.
	InitialPosition Vector2D

	// Trajectory Planning
	DefaultSteps       int
	BezierJitter       float64 // Max control point offset on each axis.
	SplineAnchorOffset float64 // Horizontal distance of the synthetic spline anchors.

	// Motion Execution
	StepDelay DurationRange

	// Hover and Click
	HoverPause     DurationRange
	PreClickPause  DurationRange
	PostClickPause DurationRange
	ClickHoldMinMs int
	ClickHoldMaxMs int

	// Scrolling
	DefaultScrollSteps int
	ScrollStepPause    DurationRange

	// Idling
	IdleRange DurationRange

	// Wandering
	WanderMinRadius float64
	WanderMinSteps  int
	WanderMaxSteps  int
	WanderPause     DurationRange

	// Idle Drift
	DriftRange    DurationRange
	DriftOffset   float64
	DriftMinSteps int
	DriftMaxSteps int
	DriftPause    DurationRange
	// DriftOverhead is added to every iteration's elapsed time on top of the pause.
	DriftOverhead float64
}

// isUnset reports whether c carries nothing beyond a random source.
func (c Config) isUnset() bool {
	c.Rng, c.Seed = nil, 0
	return c == Config{}
}

// DefaultConfig returns the standard timing and geometry profile.
func DefaultConfig() Config {
	return Config{
		InitialPosition: DefaultPosition,

		DefaultSteps:       30,
		BezierJitter:       50.0,
		SplineAnchorOffset: 50.0,

		StepDelay: Seconds(0.01, 0.03),

		HoverPause:     Seconds(0.3, 0.7),
		PreClickPause:  Seconds(0.1, 0.3),
		PostClickPause: Seconds(0.3, 0.7),
		ClickHoldMinMs: 50,
		ClickHoldMaxMs: 150,

		DefaultScrollSteps: 20,
		ScrollStepPause:    Seconds(0.01, 0.05),

		IdleRange: Seconds(1, 3),

		WanderMinRadius: 5.0,
		WanderMinSteps:  15,
		WanderMaxSteps:  35,
		WanderPause:     Seconds(0.05, 0.2),

		DriftRange:    Seconds(1, 5),
		DriftOffset:   10.0,
		DriftMinSteps: 10,
		DriftMaxSteps: 20,
		DriftPause:    Seconds(0.5, 1.5),
		DriftOverhead: 0.1,
	}
}

// Validate checks every range and count in the configuration.
func (c Config) Validate() error {
	ranges := []struct {
		name string
		r    DurationRange
	}{
		{"step_delay", c.StepDelay},
		{"hover_pause", c.HoverPause},
		{"pre_click_pause", c.PreClickPause},
		{"post_click_pause", c.PostClickPause},
		{"scroll_step_pause", c.ScrollStepPause},
		{"idle_range", c.IdleRange},
		{"wander_pause", c.WanderPause},
		{"drift_range", c.DriftRange},
		{"drift_pause", c.DriftPause},
	}
	for _, nr := range ranges {
		if err := nr.r.Validate(); err != nil {
			return fmt.Errorf("humanoid config %s: %w", nr.name, err)
		}
	}

	if c.DefaultSteps < 1 {
		return fmt.Errorf("%w: default_steps must be at least 1", ErrInvalidArgument)
	}
	if c.DefaultScrollSteps < 1 {
		return fmt.Errorf("%w: default_scroll_steps must be at least 1", ErrInvalidArgument)
	}
	if c.BezierJitter < 0 || c.SplineAnchorOffset < 0 || c.DriftOffset < 0 || c.WanderMinRadius < 0 {
		return fmt.Errorf("%w: jitter, anchor, drift offset and wander radius must be non-negative", ErrInvalidArgument)
	}
	if c.ClickHoldMinMs < 0 || c.ClickHoldMaxMs < c.ClickHoldMinMs {
		return fmt.Errorf("%w: click hold range [%d, %d]ms is invalid", ErrInvalidArgument, c.ClickHoldMinMs, c.ClickHoldMaxMs)
	}
	if c.WanderMinSteps < 1 || c.WanderMaxSteps < c.WanderMinSteps {
		return fmt.Errorf("%w: wander step range [%d, %d] is invalid", ErrInvalidArgument, c.WanderMinSteps, c.WanderMaxSteps)
	}
	if c.DriftMinSteps < 1 || c.DriftMaxSteps < c.DriftMinSteps {
		return fmt.Errorf("%w: drift step range [%d, %d] is invalid", ErrInvalidArgument, c.DriftMinSteps, c.DriftMaxSteps)
	}
	// A zero overhead with a zero pause would never advance the drift clock.
	if c.DriftOverhead <= 0 && c.DriftPause.Max <= 0 {
		return fmt.Errorf("%w: drift_overhead or drift_pause must be positive", ErrInvalidArgument)
	}
	return nil
}
