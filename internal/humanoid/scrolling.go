// File: internal/humanoid/scrolling.go
package humanoid

import (
	"context"

	"github.com/xkilldash9x/humanmouse/api/schemas"
)

// ScrollIncrements splits a scroll distance into steps equal increments. The
// sign is preserved and increments are not rounded, so they always sum back
// to distance.
func ScrollIncrements(distance float64, steps int) []float64 {
	steps = normalizeSteps(steps)
	increments := make([]float64, steps)
	step := distance / float64(steps)
	for i := range increments {
		increments[i] = step
	}
	return increments
}

// Scroll wheels the page vertically by distance in steps equal increments,
// pausing briefly after each one. Positive distances scroll down, negative up.
// Steps <= 0 uses the configured default.
func (h *Humanoid) Scroll(ctx context.Context, distance float64, steps int) error {
	if steps <= 0 {
		steps = h.config.DefaultScrollSteps
	}

	// Wheel events are delivered at the pointer's current location.
	pos := h.pointer.Position()
	for _, delta := range ScrollIncrements(distance, steps) {
		eventData := schemas.MouseEventData{
			Type:   schemas.MouseWheel,
			X:      pos.X,
			Y:      pos.Y,
			Button: schemas.ButtonNone,
			DeltaY: delta,
		}
		if err := h.executor.DispatchMouseEvent(ctx, eventData); err != nil {
			return err
		}
		if err := h.pause(ctx, h.config.ScrollStepPause); err != nil {
			return err
		}
	}
	return nil
}
