// File: api/schemas/browser.go
package schemas

import "math"

// -- Humanoid Low-Level Interaction Schemas --

// ElementGeometry defines the bounding box and vertices of a DOM element.
// X and Y are the top-left corner of the bounding box in viewport coordinates.
type ElementGeometry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Vertices of the border quad [x0, y0, x1, y1, x2, y2, x3, y3], if the
	// driver can provide them (transformed elements). Optional.
	Vertices []float64 `json:"vertices,omitempty"`
	// TagName (e.g., "INPUT", "BUTTON"), informational only.
	TagName string `json:"tagName,omitempty"`
}

// Center returns the geometric center of the element. The second return value
// is false when the geometry cannot be resolved to a usable target (zero or
// negative size, non-finite coordinates).
func (g *ElementGeometry) Center() (x, y float64, ok bool) {
	if g == nil || g.Width <= 0 || g.Height <= 0 {
		return 0, 0, false
	}

	// Prefer the quad centroid; it stays correct for rotated or skewed elements.
	if len(g.Vertices) >= 8 {
		x = (g.Vertices[0] + g.Vertices[2] + g.Vertices[4] + g.Vertices[6]) / 4
		y = (g.Vertices[1] + g.Vertices[3] + g.Vertices[5] + g.Vertices[7]) / 4
	} else {
		x = g.X + g.Width/2
		y = g.Y + g.Height/2
	}

	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	return x, y, true
}

// MouseEventType defines the type of a mouse event.
type MouseEventType string

const (
	MouseMove    MouseEventType = "mouseMoved"
	MousePress   MouseEventType = "mousePressed"
	MouseRelease MouseEventType = "mouseReleased"
	MouseWheel   MouseEventType = "mouseWheel"
)

// MouseButton defines the mouse button being pressed.
type MouseButton string

const (
	ButtonNone   MouseButton = "none"
	ButtonLeft   MouseButton = "left"
	ButtonRight  MouseButton = "right"
	ButtonMiddle MouseButton = "middle"
)

// MouseEventData encapsulates all data for a mouse event.
type MouseEventData struct {
	Type       MouseEventType `json:"type"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Button     MouseButton    `json:"button"`
	Buttons    int64          `json:"buttons"`
	ClickCount int            `json:"clickCount"`
	DeltaX     float64        `json:"deltaX"`
	DeltaY     float64        `json:"deltaY"`
}

// -- Behavior Script Schemas --

// BehaviorAction names a scripted humanoid behavior.
type BehaviorAction string

const (
	BehaviorMove   BehaviorAction = "move"
	BehaviorHover  BehaviorAction = "hover"
	BehaviorClick  BehaviorAction = "click"
	BehaviorScroll BehaviorAction = "scroll"
	BehaviorIdle   BehaviorAction = "idle"
	BehaviorWander BehaviorAction = "wander"
	BehaviorDrift  BehaviorAction = "drift"
)

// BehaviorStep is a single entry of a behavior script. Only the fields relevant
// to the step's action are read; the rest are ignored.
type BehaviorStep struct {
	Action    BehaviorAction `json:"action" yaml:"action"`
	Selector  string         `json:"selector,omitempty" yaml:"selector,omitempty"`
	Method    string         `json:"method,omitempty" yaml:"method,omitempty"`
	ClickKind string         `json:"click_kind,omitempty" yaml:"click_kind,omitempty"`
	// Move target.
	X *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	// Scroll parameters.
	Distance float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	Steps    int     `json:"steps,omitempty" yaml:"steps,omitempty"`
	// Wander parameters.
	Radius float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Count  int     `json:"count,omitempty" yaml:"count,omitempty"`
	// Idle and drift duration range, in seconds.
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}
