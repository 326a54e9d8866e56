// File: internal/humanoid/humanoid.go
package humanoid

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Humanoid drives one simulated pointer through an Executor. It owns the
// session's PointerState and random source.
type Humanoid struct {
	// mu protects rng; math/rand sources are not safe for concurrent use.
	mu       sync.Mutex
	rng      RandomSource
	config   Config
	logger   *zap.Logger
	executor Executor
	pointer  *PointerState
	id       string
}

var _ Controller = (*Humanoid)(nil)

// New creates and initializes a new Humanoid instance. Each instance is an
// independent session with its own pointer state. A config with no timing or
// geometry set (only Rng or Seed, if anything) gets DefaultConfig values.
func New(config Config, logger *zap.Logger, executor Executor) *Humanoid {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.isUnset() {
		def := DefaultConfig()
		def.Rng, def.Seed = config.Rng, config.Seed
		config = def
	}

	rng := config.Rng
	if rng == nil {
		rng = NewRandomSource(config.Seed)
	}

	id := uuid.New().String()
	return &Humanoid{
		rng:      rng,
		config:   config,
		logger:   logger.Named("humanoid").With(zap.String("session_id", id)),
		executor: executor,
		pointer:  NewPointerState(config.InitialPosition),
		id:       id,
	}
}

// NewTestHumanoid creates a Humanoid instance with deterministic randomness for testing.
func NewTestHumanoid(executor Executor, seed int64) *Humanoid {
	config := DefaultConfig()
	config.Rng = NewRandomSource(seed)
	return New(config, zap.NewNop(), executor)
}

// ID returns the session identifier attached to every log line of this instance.
func (h *Humanoid) ID() string {
	return h.id
}

// Position returns the last committed pointer position.
func (h *Humanoid) Position() Vector2D {
	return h.pointer.Position()
}

// Pointer exposes the session's pointer state.
func (h *Humanoid) Pointer() *PointerState {
	return h.pointer
}

// randUniform samples uniformly from [lo, hi] under the lock.
func (h *Humanoid) randUniform(lo, hi float64) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return uniform(h.rng, lo, hi)
}

// randInt samples an integer uniformly from [lo, hi] under the lock.
func (h *Humanoid) randInt(lo, hi int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return intRange(h.rng, lo, hi)
}

// sample draws a duration from r under the lock.
func (h *Humanoid) sample(r DurationRange) time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()
	return r.Sample(h.rng)
}

// sampleSeconds draws a raw seconds value from r under the lock.
func (h *Humanoid) sampleSeconds(r DurationRange) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return r.SampleSeconds(h.rng)
}
