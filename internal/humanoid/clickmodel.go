// File: internal/humanoid/clickmodel.go
package humanoid

import (
	"context"
	"time"

	"github.com/xkilldash9x/humanmouse/api/schemas"
	"go.uber.org/zap"
)

// Hover moves the pointer to the center of the element and lingers there.
// A missing element is logged and skipped without moving the pointer.
func (h *Humanoid) Hover(ctx context.Context, selector string, method Method) error {
	target, found, err := h.locateTarget(ctx, selector)
	if err != nil || !found {
		return err
	}

	if err := h.MoveTo(ctx, MotionRequest{End: &target, Method: method}); err != nil {
		return err
	}
	return h.pause(ctx, h.config.HoverPause)
}

// Click moves the pointer to the center of the element and issues exactly one
// click action of the requested kind. Unknown kinds click once with the left button.
// One hold delay is sampled per action and reused for every press and gap in it.
func (h *Humanoid) Click(ctx context.Context, selector string, kind ClickKind, method Method) error {
	target, found, err := h.locateTarget(ctx, selector)
	if err != nil || !found {
		return err
	}

	if err := h.MoveTo(ctx, MotionRequest{End: &target, Method: method}); err != nil {
		return err
	}
	if err := h.pause(ctx, h.config.PreClickPause); err != nil {
		return err
	}

	button, clickCount, known := clickParameters(kind)
	if !known {
		h.logger.Debug("Humanoid: unknown click kind, using a single click", zap.String("kind", string(kind)))
	}

	hold := time.Duration(h.randInt(h.config.ClickHoldMinMs, h.config.ClickHoldMaxMs)) * time.Millisecond
	if err := h.performClick(ctx, target, button, clickCount, hold); err != nil {
		return err
	}

	return h.pause(ctx, h.config.PostClickPause)
}

// clickParameters maps a click kind onto the button and click count it
// dispatches. Unknown kinds report false and map to a single left click.
func clickParameters(kind ClickKind) (schemas.MouseButton, int, bool) {
	switch kind {
	case ClickSingle, "":
		return schemas.ButtonLeft, 1, true
	case ClickDouble:
		return schemas.ButtonLeft, 2, true
	case ClickRight:
		return schemas.ButtonRight, 1, true
	default:
		return schemas.ButtonLeft, 1, false
	}
}

// performClick dispatches clickCount press/release pairs, each held for hold
// and separated by the same delay. A double click is a first pair with
// ClickCount 1 followed by a second pair with ClickCount 2.
func (h *Humanoid) performClick(ctx context.Context, pos Vector2D, button schemas.MouseButton, clickCount int, hold time.Duration) error {
	for n := 1; n <= clickCount; n++ {
		if n > 1 {
			if err := h.executor.Sleep(ctx, hold); err != nil {
				return err
			}
		}
		if err := h.pressAndRelease(ctx, pos, button, n, hold); err != nil {
			return err
		}
	}
	return nil
}

// pressAndRelease sends one press, holds, then releases. The button is lifted
// even when the hold is interrupted.
func (h *Humanoid) pressAndRelease(ctx context.Context, pos Vector2D, button schemas.MouseButton, clickCount int, hold time.Duration) error {
	press := schemas.MouseEventData{
		Type:       schemas.MousePress,
		X:          pos.X,
		Y:          pos.Y,
		Button:     button,
		Buttons:    buttonsBitfield(button),
		ClickCount: clickCount,
	}
	if err := h.executor.DispatchMouseEvent(ctx, press); err != nil {
		return err
	}

	if err := h.executor.Sleep(ctx, hold); err != nil {
		h.releaseAfterFailure(pos, button, clickCount)
		return err
	}

	release := press
	release.Type = schemas.MouseRelease
	release.Buttons = 0
	return h.executor.DispatchMouseEvent(ctx, release)
}

// releaseAfterFailure lifts a pressed button when the hold was interrupted, so
// the browser is not left with a stuck button. Uses a fresh context because the
// operation context is usually already cancelled.
func (h *Humanoid) releaseAfterFailure(pos Vector2D, button schemas.MouseButton, clickCount int) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	release := schemas.MouseEventData{
		Type:       schemas.MouseRelease,
		X:          pos.X,
		Y:          pos.Y,
		Button:     button,
		ClickCount: clickCount,
	}
	if err := h.executor.DispatchMouseEvent(ctx, release); err != nil {
		h.logger.Warn("Humanoid: failed to release mouse button after interrupted click", zap.Error(err))
	}
}

// buttonsBitfield converts a button into the pressed-buttons bitfield
// (1: Left, 2: Right, 4: Middle).
func buttonsBitfield(button schemas.MouseButton) int64 {
	switch button {
	case schemas.ButtonLeft:
		return 1
	case schemas.ButtonRight:
		return 2
	case schemas.ButtonMiddle:
		return 4
	}
	return 0
}
