// File: internal/humanoid/curve_test.go
package humanoid

import (
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadraticBezier(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		p0, p1, p2 Vector2D
		steps      int
		wantLen    int
	}{
		{name: "horizontal", p0: Vector2D{0, 0}, p1: Vector2D{50, 40}, p2: Vector2D{100, 0}, steps: 10, wantLen: 11},
		{name: "diagonal", p0: Vector2D{-20, 300}, p1: Vector2D{10, 10}, p2: Vector2D{640, 480}, steps: 30, wantLen: 31},
		{name: "same_point", p0: Vector2D{50, 50}, p1: Vector2D{50, 50}, p2: Vector2D{50, 50}, steps: 5, wantLen: 6},
		{name: "minimum_steps", p0: Vector2D{0, 0}, p1: Vector2D{1, 1}, p2: Vector2D{2, 2}, steps: 1, wantLen: 2},
		{name: "zero_steps_clamped", p0: Vector2D{0, 0}, p1: Vector2D{1, 1}, p2: Vector2D{2, 2}, steps: 0, wantLen: 2},
		{name: "negative_steps_clamped", p0: Vector2D{3, 4}, p1: Vector2D{1, 1}, p2: Vector2D{9, 9}, steps: -7, wantLen: 2},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := QuadraticBezier(tc.p0, tc.p1, tc.p2, tc.steps)
			require.Len(t, path, tc.wantLen)
			assert.Equal(t, tc.p0, path.Start(), "first point must be exactly P0")
			assert.Equal(t, tc.p2, path.End(), "last point must be exactly P2")
		})
	}
}

func TestQuadraticBezier_Midpoint(t *testing.T) {
	t.Parallel()
	// At t=0.5: 0.25*P0 + 0.5*P1 + 0.25*P2.
	path := QuadraticBezier(Vector2D{0, 0}, Vector2D{50, 100}, Vector2D{100, 0}, 2)
	require.Len(t, path, 3)
	assert.InDelta(t, 50.0, path[1].X, 1e-9)
	assert.InDelta(t, 50.0, path[1].Y, 1e-9)
}

func TestCatmullRom(t *testing.T) {
	t.Parallel()

	p0, p1, p2, p3 := Vector2D{-50, 0}, Vector2D{0, 0}, Vector2D{100, 40}, Vector2D{150, 40}
	for _, steps := range []int{0, 1, 2, 7, 20, 100} {
		path := CatmullRom(p0, p1, p2, p3, steps)
		require.Len(t, path, normalizeSteps(steps)+1)
		assert.Equal(t, p1, path.Start(), "first point must be exactly P1 (steps=%d)", steps)
		assert.Equal(t, p2, path.End(), "last point must be exactly P2 (steps=%d)", steps)
	}
}

func TestCatmullRom_CollinearAnchorsStayOnLine(t *testing.T) {
	t.Parallel()
	// Evenly spaced collinear control points reduce the blend to linear interpolation.
	path := CatmullRom(Vector2D{-50, 0}, Vector2D{0, 0}, Vector2D{50, 0}, Vector2D{100, 0}, 5)
	want := Path{{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0}, {50, 0}}
	if diff := cmp.Diff(want, path, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("CatmullRom() mismatch (-want +got):\n%s", diff)
	}
}

func TestLinearPath(t *testing.T) {
	t.Parallel()
	path := LinearPath(Vector2D{0, 0}, Vector2D{100, 0}, 10)
	require.Len(t, path, 11)
	for i, p := range path {
		assert.Equal(t, float64(i*10), p.X, "x at index %d", i)
		assert.Equal(t, 0.0, p.Y, "y at index %d", i)
	}
}

func TestCurveGenerators_Deterministic(t *testing.T) {
	t.Parallel()
	a, b, c, d := Vector2D{1.5, 2.5}, Vector2D{-40, 77}, Vector2D{300, 120}, Vector2D{350, 120}

	assert.Equal(t, QuadraticBezier(a, b, c, 25), QuadraticBezier(a, b, c, 25))
	assert.Equal(t, CatmullRom(a, b, c, d, 25), CatmullRom(a, b, c, d, 25))
	assert.Equal(t, LinearPath(a, c, 25), LinearPath(a, c, 25))
}

// FuzzCurveEndpoints checks the endpoint and length guarantees for arbitrary inputs.
func FuzzCurveEndpoints(f *testing.F) {
	f.Add([]byte("seed-corpus-entry-for-curves"))
	f.Fuzz(func(t *testing.T, data []byte) {
		consumer := fuzz.NewConsumer(data)

		var pts [4]Vector2D
		for i := range pts {
			if err := consumer.GenerateStruct(&pts[i]); err != nil {
				return
			}
		}
		steps, err := consumer.GetInt()
		if err != nil {
			return
		}
		// Keep allocations bounded.
		steps %= 512

		bez := QuadraticBezier(pts[0], pts[1], pts[2], steps)
		if len(bez) != normalizeSteps(steps)+1 {
			t.Fatalf("bezier length %d for steps %d", len(bez), steps)
		}
		if bez.Start() != pts[0] || bez.End() != pts[2] {
			t.Fatalf("bezier endpoints moved: %v -> %v", bez.Start(), bez.End())
		}

		spline := CatmullRom(pts[0], pts[1], pts[2], pts[3], steps)
		if spline.Start() != pts[1] || spline.End() != pts[2] {
			t.Fatalf("spline endpoints moved: %v -> %v", spline.Start(), spline.End())
		}
	})
}
