// File: internal/humanoid/interface.go
package humanoid

import (
	"context"
	"time"

	"github.com/xkilldash9x/humanmouse/api/schemas"
)

// Controller defines the high-level interface for human-like interactions.
// This is the interface implemented by the Humanoid struct itself.
type Controller interface {
	PlanPath(req MotionRequest) (Path, error)
	ExecuteMovement(ctx context.Context, path Path) error
	MoveTo(ctx context.Context, req MotionRequest) error
	Hover(ctx context.Context, selector string, method Method) error
	Click(ctx context.Context, selector string, kind ClickKind, method Method) error
	Scroll(ctx context.Context, distance float64, steps int) error
	Idle(ctx context.Context, r *DurationRange) error
	Wander(ctx context.Context, radius float64, count int, method Method) error
	IdleDrift(ctx context.Context, r *DurationRange) error
	Position() Vector2D
}

// Executor defines the low-level pointer driver the Humanoid controller calls into.
// This interface is agnostic of the underlying automation technology.
type Executor interface {
	// Sleep pauses execution, respecting context cancellation.
	Sleep(ctx context.Context, d time.Duration) error
	// DispatchMouseEvent sends a single move, press, release or wheel event.
	DispatchMouseEvent(ctx context.Context, data schemas.MouseEventData) error
	// GetElementGeometry returns the bounding box of the first element matching
	// the selector, or (nil, nil) if it cannot be located.
	GetElementGeometry(ctx context.Context, selector string) (*schemas.ElementGeometry, error)
}

// Method selects how a trajectory is shaped.
type Method string

const (
	MethodBezier Method = "bezier"
	MethodSpline Method = "spline"
	MethodLinear Method = "linear"
)

// ClickKind selects the input action issued by Click.
type ClickKind string

const (
	ClickSingle ClickKind = "single"
	ClickDouble ClickKind = "double"
	ClickRight  ClickKind = "right"
)

// MotionRequest describes one planned movement. End is required; a nil Start
// resolves to the current pointer position and Steps <= 0 uses the configured default.
type MotionRequest struct {
	Start  *Vector2D
	End    *Vector2D
	Steps  int
	Method Method
}
