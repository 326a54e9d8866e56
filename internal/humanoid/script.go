// File: internal/humanoid/script.go
package humanoid

import (
	"context"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/xkilldash9x/humanmouse/api/schemas"
)

// Script is an ordered list of behavior steps run against one session.
type Script struct {
	Name  string                 `yaml:"name"`
	Steps []schemas.BehaviorStep `yaml:"steps"`
}

// LoadScript reads a YAML behavior script. A leading "~" in the path is
// expanded to the user's home directory.
func LoadScript(path string) (*Script, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand script path '%s': %w", path, err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read script '%s': %w", expanded, err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML behavior script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("%w: script has no steps", ErrInvalidArgument)
	}
	return &s, nil
}

// RunScript executes the steps in order and stops at the first failure.
func (h *Humanoid) RunScript(ctx context.Context, steps []schemas.BehaviorStep) error {
	for i, step := range steps {
		h.logger.Debug("Humanoid: running script step", zap.Int("index", i), zap.String("action", string(step.Action)))
		if err := h.runStep(ctx, step); err != nil {
			return fmt.Errorf("script step %d (%s): %w", i, step.Action, err)
		}
	}
	return nil
}

func (h *Humanoid) runStep(ctx context.Context, step schemas.BehaviorStep) error {
	method := Method(step.Method)

	switch step.Action {
	case schemas.BehaviorMove:
		if step.X == nil || step.Y == nil {
			return fmt.Errorf("%w: move requires x and y", ErrInvalidArgument)
		}
		return h.MoveTo(ctx, MotionRequest{End: &Vector2D{X: *step.X, Y: *step.Y}, Steps: step.Steps, Method: method})

	case schemas.BehaviorHover:
		return h.Hover(ctx, step.Selector, method)

	case schemas.BehaviorClick:
		return h.Click(ctx, step.Selector, ClickKind(step.ClickKind), method)

	case schemas.BehaviorScroll:
		return h.Scroll(ctx, step.Distance, step.Steps)

	case schemas.BehaviorIdle:
		r, err := stepRange(step)
		if err != nil {
			return err
		}
		return h.Idle(ctx, r)

	case schemas.BehaviorWander:
		radius, count := step.Radius, step.Count
		if radius == 0 {
			radius = DefaultWanderRadius
		}
		if count == 0 {
			count = DefaultWanderCount
		}
		return h.Wander(ctx, radius, count, method)

	case schemas.BehaviorDrift:
		r, err := stepRange(step)
		if err != nil {
			return err
		}
		return h.IdleDrift(ctx, r)

	default:
		return fmt.Errorf("%w: unknown action '%s'", ErrInvalidArgument, step.Action)
	}
}

// stepRange builds the optional duration range of an idle or drift step.
// Both bounds must be given together.
func stepRange(step schemas.BehaviorStep) (*DurationRange, error) {
	switch {
	case step.Min == nil && step.Max == nil:
		return nil, nil
	case step.Min == nil || step.Max == nil:
		return nil, fmt.Errorf("%w: min and max must be set together", ErrInvalidArgument)
	}
	r := Seconds(*step.Min, *step.Max)
	return &r, nil
}
