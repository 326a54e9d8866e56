// File: internal/humanoid/movement.go
package humanoid

import (
	"context"

	"github.com/xkilldash9x/humanmouse/api/schemas"
	"go.uber.org/zap"
)

// ExecuteMovement walks the path point by point, dispatching one mouse move
// per point followed by a randomized micro-delay. The pointer state is
// committed to the final point only after every point has been delivered.
//
// Driver and sleep errors (including context cancellation) are returned as-is
// and leave the pointer state untouched.
func (h *Humanoid) ExecuteMovement(ctx context.Context, path Path) error {
	if len(path) == 0 {
		return nil
	}

	for _, p := range path {
		eventData := schemas.MouseEventData{
			Type:   schemas.MouseMove,
			X:      p.X,
			Y:      p.Y,
			Button: schemas.ButtonNone,
		}
		if err := h.executor.DispatchMouseEvent(ctx, eventData); err != nil {
			if ctx.Err() == nil {
				h.logger.Warn("Humanoid: Failed to dispatch mouse move event", zap.Error(err))
			}
			return err
		}

		if err := h.executor.Sleep(ctx, h.sample(h.config.StepDelay)); err != nil {
			return err
		}
	}

	h.pointer.commit(path.End())
	return nil
}

// MoveTo plans a movement and executes it.
func (h *Humanoid) MoveTo(ctx context.Context, req MotionRequest) error {
	path, err := h.PlanPath(req)
	if err != nil {
		return err
	}

	h.logger.Debug("Humanoid: moving pointer",
		zap.Float64("from_x", path.Start().X), zap.Float64("from_y", path.Start().Y),
		zap.Float64("to_x", path.End().X), zap.Float64("to_y", path.End().Y),
		zap.Float64("distance", path.Start().Dist(path.End())),
		zap.Int("points", len(path)),
		zap.String("method", string(req.Method)),
	)
	return h.ExecuteMovement(ctx, path)
}
