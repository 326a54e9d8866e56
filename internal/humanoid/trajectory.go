// File: internal/humanoid/trajectory.go
package humanoid

import (
	"fmt"

	"go.uber.org/zap"
)

// PlanPath resolves a movement request into a Path. The path always starts at
// the resolved start and ends at the requested end, whatever the method.
//
// An empty method plans a Bézier curve; any unrecognized method falls back to
// a straight line.
func (h *Humanoid) PlanPath(req MotionRequest) (Path, error) {
	if req.End == nil {
		return nil, fmt.Errorf("%w: movement end point is required", ErrInvalidArgument)
	}

	start := h.pointer.Position()
	if req.Start != nil {
		start = *req.Start
	}
	end := *req.End

	steps := req.Steps
	if steps <= 0 {
		steps = h.config.DefaultSteps
	}

	switch req.Method {
	case MethodBezier, "":
		return QuadraticBezier(start, h.bezierControlPoint(start, end), end, steps), nil

	case MethodSpline:
		before, after := h.splineAnchors(start, end)
		return CatmullRom(before, start, end, after, steps), nil

	case MethodLinear:
		return LinearPath(start, end, steps), nil

	default:
		h.logger.Debug("Humanoid: unknown trajectory method, planning a straight line", zap.String("method", string(req.Method)))
		return LinearPath(start, end, steps), nil
	}
}

// bezierControlPoint places the single control point near the segment midpoint,
// offset by independent jitter on each axis to avoid perfectly straight motion.
func (h *Humanoid) bezierControlPoint(start, end Vector2D) Vector2D {
	j := h.config.BezierJitter

	h.mu.Lock()
	offset := Vector2D{
		X: uniform(h.rng, -j, j),
		Y: uniform(h.rng, -j, j),
	}
	h.mu.Unlock()

	return start.Midpoint(end).Add(offset)
}

// splineAnchors synthesizes the before-start and after-end anchors by extending
// horizontally outward from the endpoints.
func (h *Humanoid) splineAnchors(start, end Vector2D) (before, after Vector2D) {
	a := h.config.SplineAnchorOffset
	return Vector2D{X: start.X - a, Y: start.Y}, Vector2D{X: end.X + a, Y: end.Y}
}
