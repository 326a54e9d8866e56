// File: internal/humanoid/pointer.go
package humanoid

import "sync"

// DefaultPosition is where a fresh PointerState starts when no initial
// position is configured.
var DefaultPosition = Vector2D{X: 100, Y: 100}

// PointerState records the last position the simulated pointer was moved to.
// It lives as long as the session that owns it.
//
// Individual reads and commits are safe for concurrent use, but a
// read-plan-commit sequence is not: one session must drive its pointer
// sequentially.
type PointerState struct {
	mu  sync.Mutex
	pos Vector2D
}

// NewPointerState returns a PointerState positioned at initial.
func NewPointerState(initial Vector2D) *PointerState {
	return &PointerState{pos: initial}
}

// Position returns the last committed pointer position.
func (s *PointerState) Position() Vector2D {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// commit records the end point of a completed movement.
func (s *PointerState) commit(p Vector2D) {
	s.mu.Lock()
	s.pos = p
	s.mu.Unlock()
}
