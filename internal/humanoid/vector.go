// File: internal/humanoid/vector.go
package humanoid

import "math"

// Vector2D represents a point or vector in 2D space.
type Vector2D struct {
	X, Y float64
}

// Add returns the vector sum of v and other.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the vector difference of v and other.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector v scaled by the scalar factor.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{X: v.X * scalar, Y: v.Y * scalar}
}

// Midpoint returns the point halfway between v and other.
func (v Vector2D) Midpoint(other Vector2D) Vector2D {
	return Vector2D{X: (v.X + other.X) / 2, Y: (v.Y + other.Y) / 2}
}

// Dist calculates the Euclidean distance between v and other (treated as points).
func (v Vector2D) Dist(other Vector2D) float64 {
	// Use math.Hypot for numerical stability.
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}

// Polar returns the point at the given radius and angle (radians) around v.
func (v Vector2D) Polar(radius, angle float64) Vector2D {
	return Vector2D{X: v.X + radius*math.Cos(angle), Y: v.Y + radius*math.Sin(angle)}
}

// Ptr returns a pointer to a copy of v. Handy for optional MotionRequest fields.
func (v Vector2D) Ptr() *Vector2D {
	return &v
}
