// File: internal/browser/session/cdp_executor.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/xkilldash9x/humanmouse/api/schemas"
	"github.com/xkilldash9x/humanmouse/internal/humanoid"
)

// geometryScript resolves a selector to its viewport geometry, or null when
// the element is missing or not rendered. The quad is taken from the client
// rect, which is already in the viewport coordinates CDP mouse events use.
const geometryScript = `(function(sel) {
	const node = document.querySelector(sel);
	if (!node) return null;
	const rect = node.getBoundingClientRect();
	const style = window.getComputedStyle(node);
	if (rect.width <= 0 || rect.height <= 0 || style.display === 'none' || style.visibility === 'hidden') {
		return null;
	}
	return {
		x: rect.left,
		y: rect.top,
		width: rect.width,
		height: rect.height,
		vertices: [rect.left, rect.top, rect.right, rect.top, rect.right, rect.bottom, rect.left, rect.bottom],
		tagName: node.tagName || ''
	};
})(%s)`

// cdpExecutor is an adapter that implements the humanoid.Executor interface
// using chromedp actions.
type cdpExecutor struct {
	ctx            context.Context // The session's tab context.
	logger         *zap.Logger
	limiter        *rate.Limiter // Nil when event rate limiting is disabled.
	timeout        time.Duration
	runActionsFunc func(ctx context.Context, actions ...chromedp.Action) error // Points to Session.RunActions
}

var _ humanoid.Executor = (*cdpExecutor)(nil)

// newCDPExecutor builds an executor that paces mouse events at no more than
// maxEventsPerSecond. A non-positive rate disables pacing.
func newCDPExecutor(ctx context.Context, logger *zap.Logger, maxEventsPerSecond float64, timeout time.Duration, run func(ctx context.Context, actions ...chromedp.Action) error) *cdpExecutor {
	e := &cdpExecutor{
		ctx:            ctx,
		logger:         logger,
		timeout:        timeout,
		runActionsFunc: run,
	}
	if maxEventsPerSecond > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(maxEventsPerSecond), 1)
	}
	return e
}

// Sleep pauses execution for the specified duration, respecting the context.
func (e *cdpExecutor) Sleep(ctx context.Context, d time.Duration) error {
	return e.runActionsFunc(ctx, chromedp.Sleep(d))
}

// DispatchMouseEvent dispatches a single mouse event via CDP.
func (e *cdpExecutor) DispatchMouseEvent(ctx context.Context, data schemas.MouseEventData) error {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	p := input.DispatchMouseEvent(input.MouseType(data.Type), data.X, data.Y).
		WithButton(input.MouseButton(data.Button)).
		WithButtons(data.Buttons).
		WithClickCount(int64(data.ClickCount))

	// Deltas are only meaningful on wheel events.
	if data.Type == schemas.MouseWheel {
		p = p.WithDeltaX(data.DeltaX).WithDeltaY(data.DeltaY)
	}

	opCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	err := e.runActionsFunc(opCtx, p)
	if err != nil && errors.Is(opCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		e.logger.Debug("cdpExecutor DispatchMouseEvent timed out.", zap.Duration("timeout", e.timeout))
		return fmt.Errorf("cdpExecutor DispatchMouseEvent timed out after %v: %w", e.timeout, opCtx.Err())
	}
	return err
}

// GetElementGeometry evaluates the geometry script for selector. A missing or
// invisible element yields (nil, nil).
func (e *cdpExecutor) GetElementGeometry(ctx context.Context, selector string) (*schemas.ElementGeometry, error) {
	encoded, err := json.Marshal(selector)
	if err != nil {
		return nil, fmt.Errorf("failed to encode selector '%s': %w", selector, err)
	}

	opCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var res json.RawMessage
	err = e.runActionsFunc(opCtx,
		chromedp.Evaluate(fmt.Sprintf(geometryScript, encoded), &res, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithReturnByValue(true).WithAwaitPromise(true).WithSilent(true)
		}),
	)
	if errors.Is(err, chromedp.ErrJSNull) {
		err, res = nil, nil
	}
	if err != nil {
		if errors.Is(opCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("timeout getting geometry for '%s': %w", selector, opCtx.Err())
		}
		if ctx.Err() != nil || e.ctx.Err() != nil {
			return nil, fmt.Errorf("context error getting geometry for '%s': %w", selector, err)
		}
		return nil, fmt.Errorf("failed JS evaluation for geometry '%s': %w", selector, err)
	}

	if len(res) == 0 || string(res) == "null" {
		e.logger.Debug("Element geometry evaluation returned null (not found or not visible).", zap.String("selector", selector))
		return nil, nil
	}

	var geom schemas.ElementGeometry
	if err := json.Unmarshal(res, &geom); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geometry for '%s': %w (payload: %s)", selector, err, string(res))
	}
	return &geom, nil
}
