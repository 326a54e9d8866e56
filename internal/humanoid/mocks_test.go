// File: internal/humanoid/mocks_test.go
package humanoid

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/xkilldash9x/humanmouse/api/schemas"
)

// mockExecutor implements the Executor interface for testing.
// This is centralized here to be reusable across all tests in the package.
type mockExecutor struct {
	t                *testing.T
	dispatchedEvents []schemas.MouseEventData
	sleepDurations   []time.Duration
	geometryCalls    []string
	returnErr        error
	mu               sync.Mutex

	// For advanced scenario control.
	cancelOnCall int
	failOnCall   int
	callCount    int
	cancelFunc   context.CancelFunc

	// Geometry returned for every selector unless MockGetElementGeometry is set.
	geometry *schemas.ElementGeometry

	// Function overrides for specific behaviors. Overrides must not call back
	// into the Humanoid, which may hold its mutex while calling the executor.
	MockGetElementGeometry func(ctx context.Context, selector string) (*schemas.ElementGeometry, error)
	MockSleep              func(ctx context.Context, d time.Duration) error
}

var _ Executor = (*mockExecutor)(nil)

// newMockExecutor creates a new mock executor.
func newMockExecutor(t *testing.T) *mockExecutor {
	return &mockExecutor{
		t:                t,
		dispatchedEvents: make([]schemas.MouseEventData, 0),
		sleepDurations:   make([]time.Duration, 0),
	}
}

// DispatchMouseEvent records the event, then applies forced failures and cancellation.
func (m *mockExecutor) DispatchMouseEvent(ctx context.Context, data schemas.MouseEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callCount++

	// Check for forced failure before recording, so failed events are not counted as delivered.
	if m.returnErr != nil && (m.failOnCall == 0 || m.callCount >= m.failOnCall) {
		return m.returnErr
	}

	// Allow context.Background() (used for cleanup) even after cancellation.
	if ctx.Err() != nil && ctx != context.Background() {
		return ctx.Err()
	}

	m.dispatchedEvents = append(m.dispatchedEvents, data)

	if m.cancelOnCall > 0 && m.callCount == m.cancelOnCall && m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}

// Sleep records the duration instead of sleeping, checking for overrides first.
func (m *mockExecutor) Sleep(ctx context.Context, d time.Duration) error {
	if m.MockSleep != nil {
		return m.MockSleep(ctx, d)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleepDurations = append(m.sleepDurations, d)
	return nil
}

// GetElementGeometry returns the configured geometry, checking for overrides first.
func (m *mockExecutor) GetElementGeometry(ctx context.Context, selector string) (*schemas.ElementGeometry, error) {
	m.mu.Lock()
	m.geometryCalls = append(m.geometryCalls, selector)
	m.mu.Unlock()

	if m.MockGetElementGeometry != nil {
		return m.MockGetElementGeometry(ctx, selector)
	}
	return m.geometry, nil
}

// eventsOfType returns the dispatched events of one type, in order.
func (m *mockExecutor) eventsOfType(typ schemas.MouseEventType) []schemas.MouseEventData {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []schemas.MouseEventData
	for _, e := range m.dispatchedEvents {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// getMockSleeps returns a copy of the recorded sleep durations.
func getMockSleeps(m *mockExecutor) []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.sleepDurations))
	copy(out, m.sleepDurations)
	return out
}

// scriptedRand replays fixed values so tests can assert exact output points.
// Float64 cycles through floats; Intn returns ints[i] % n.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

// newScriptedHumanoid builds a Humanoid whose random source replays the given values.
func newScriptedHumanoid(t *testing.T, floats []float64, ints []int) (*Humanoid, *mockExecutor) {
	t.Helper()
	mock := newMockExecutor(t)
	config := DefaultConfig()
	config.Rng = &scriptedRand{floats: floats, ints: ints}
	return New(config, nil, mock), mock
}

// pointsAlmostEqual compares two points within a tolerance.
func pointsAlmostEqual(a, b Vector2D, tolerance float64) bool {
	return a.Dist(b) <= tolerance
}
