// File: internal/humanoid/curve.go
package humanoid

// Path is an ordered, non-empty sequence of points. The first point is the
// planning start and the last point is the planning end.
type Path []Vector2D

// Start returns the first point of the path.
func (p Path) Start() Vector2D { return p[0] }

// End returns the last point of the path.
func (p Path) End() Vector2D { return p[len(p)-1] }

// normalizeSteps clamps the step count to the minimum usable value of 1,
// which yields exactly the two endpoints.
func normalizeSteps(steps int) int {
	if steps < 1 {
		return 1
	}
	return steps
}

// QuadraticBezier samples the quadratic Bézier curve defined by the endpoints
// p0, p2 and the control point p1 at steps+1 evenly spaced parameter values.
// The first point is exactly p0 and the last exactly p2.
func QuadraticBezier(p0, p1, p2 Vector2D, steps int) Path {
	steps = normalizeSteps(steps)

	path := make(Path, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		omt := 1.0 - t

		// B(t) = (1-t)^2*P0 + 2(1-t)t*P1 + t^2*P2
		path[i] = p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
	}

	// Pin the endpoints so rounding never moves them.
	path[0] = p0
	path[steps] = p2
	return path
}

// CatmullRom samples the Catmull-Rom segment between p1 and p2. p0 and p3 are
// the anchors before and after the segment that shape its curvature.
// The first point is exactly p1 and the last exactly p2.
func CatmullRom(p0, p1, p2, p3 Vector2D, steps int) Path {
	steps = normalizeSteps(steps)

	path := make(Path, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		path[i] = Vector2D{
			X: catmullRomAxis(p0.X, p1.X, p2.X, p3.X, t),
			Y: catmullRomAxis(p0.Y, p1.Y, p2.Y, p3.Y, t),
		}
	}

	path[0] = p1
	path[steps] = p2
	return path
}

// catmullRomAxis evaluates the uniform cubic Catmull-Rom blend on one axis.
func catmullRomAxis(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// LinearPath returns steps+1 evenly spaced points on the segment from start to end.
func LinearPath(start, end Vector2D, steps int) Path {
	steps = normalizeSteps(steps)

	path := make(Path, steps+1)
	delta := end.Sub(start)
	for i := 0; i <= steps; i++ {
		// Scale before dividing so integer-spaced inputs yield exact coordinates.
		path[i] = Vector2D{
			X: start.X + delta.X*float64(i)/float64(steps),
			Y: start.Y + delta.Y*float64(i)/float64(steps),
		}
	}

	path[0] = start
	path[steps] = end
	return path
}
