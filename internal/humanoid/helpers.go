// File: internal/humanoid/helpers.go
package humanoid

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// locateTarget resolves a selector to the center of its bounding box. The
// boolean result is false when the element cannot be located or has no usable
// geometry; that case is logged and is not an error.
func (h *Humanoid) locateTarget(ctx context.Context, selector string) (Vector2D, bool, error) {
	geo, err := h.executor.GetElementGeometry(ctx, selector)
	if err != nil {
		if ctx.Err() != nil {
			return Vector2D{}, false, ctx.Err()
		}
		return Vector2D{}, false, fmt.Errorf("humanoid: failed to get element geometry for '%s': %w", selector, err)
	}

	x, y, ok := geo.Center()
	if !ok {
		h.logger.Warn("Humanoid: target element not found or invisible", zap.String("selector", selector))
		return Vector2D{}, false, nil
	}
	return Vector2D{X: x, Y: y}, true, nil
}

// pause sleeps for a duration sampled from r through the executor.
func (h *Humanoid) pause(ctx context.Context, r DurationRange) error {
	return h.executor.Sleep(ctx, h.sample(r))
}
