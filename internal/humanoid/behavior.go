// File: internal/humanoid/behavior.go
package humanoid

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Wander defaults used when a caller leaves radius or count unset.
const (
	DefaultWanderRadius = 30.0
	DefaultWanderCount  = 4
)

// Idle suspends once for a duration sampled from r. A nil range uses the
// configured idle range. The pointer does not move.
func (h *Humanoid) Idle(ctx context.Context, r *DurationRange) error {
	window, err := resolveRange(r, h.config.IdleRange)
	if err != nil {
		return err
	}
	return h.pause(ctx, window)
}

// Wander performs count short movements, each to a random point on a circle of
// random radius in [WanderMinRadius, radius] around the pointer's current
// position. Every movement commits before the next target is drawn, so the
// result is a random walk rather than a scatter around a fixed center.
func (h *Humanoid) Wander(ctx context.Context, radius float64, count int, method Method) error {
	if count <= 0 {
		return nil
	}
	minRadius := h.config.WanderMinRadius
	if radius < minRadius {
		radius = minRadius
	}

	for i := 0; i < count; i++ {
		h.mu.Lock()
		angle := uniform(h.rng, 0, 2*math.Pi)
		r := uniform(h.rng, minRadius, radius)
		steps := intRange(h.rng, h.config.WanderMinSteps, h.config.WanderMaxSteps)
		h.mu.Unlock()

		target := h.pointer.Position().Polar(r, angle)
		if err := h.MoveTo(ctx, MotionRequest{End: &target, Steps: steps, Method: method}); err != nil {
			return err
		}
		if err := h.pause(ctx, h.config.WanderPause); err != nil {
			return err
		}
	}
	return nil
}

// IdleDrift makes small random Bézier movements around the current position,
// pausing between them, until a time budget sampled from r is used up. A nil
// range uses the configured drift range.
//
// The budget is charged with each pause plus a fixed per-iteration overhead,
// not wall-clock time, and the last iteration may overshoot it.
func (h *Humanoid) IdleDrift(ctx context.Context, r *DurationRange) error {
	budget, err := resolveRange(r, h.config.DriftRange)
	if err != nil {
		return err
	}

	if h.config.DriftOverhead <= 0 && h.config.DriftPause.Max <= 0 {
		return fmt.Errorf("%w: drift_overhead or drift_pause must be positive", ErrInvalidArgument)
	}

	total := h.sampleSeconds(budget)
	offset := h.config.DriftOffset
	elapsed := 0.0
	iterations := 0

	for elapsed < total {
		h.mu.Lock()
		delta := Vector2D{X: uniform(h.rng, -offset, offset), Y: uniform(h.rng, -offset, offset)}
		steps := intRange(h.rng, h.config.DriftMinSteps, h.config.DriftMaxSteps)
		h.mu.Unlock()

		target := h.pointer.Position().Add(delta)
		if err := h.MoveTo(ctx, MotionRequest{End: &target, Steps: steps, Method: MethodBezier}); err != nil {
			return err
		}

		wait := h.sampleSeconds(h.config.DriftPause)
		if err := h.executor.Sleep(ctx, secondsToDuration(wait)); err != nil {
			return err
		}
		elapsed += wait + h.config.DriftOverhead
		iterations++
	}

	h.logger.Debug("Humanoid: idle drift finished",
		zap.Float64("budget_s", total),
		zap.Float64("charged_s", elapsed),
		zap.Int("iterations", iterations),
	)
	return nil
}

// resolveRange returns r, or fallback when r is nil, after validating it.
func resolveRange(r *DurationRange, fallback DurationRange) (DurationRange, error) {
	if r == nil {
		return fallback, nil
	}
	if err := r.Validate(); err != nil {
		return DurationRange{}, err
	}
	return *r, nil
}
