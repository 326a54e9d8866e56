// File: internal/browser/session/session.go
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/humanmouse/internal/config"
	"github.com/xkilldash9x/humanmouse/internal/humanoid"
)

// Browser owns one Chrome process. Every Session it opens is a separate tab
// with its own pointer.
type Browser struct {
	cfg           config.BrowserConfig
	logger        *zap.Logger
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// Launch starts a browser process and waits until it responds.
func Launch(ctx context.Context, cfg config.BrowserConfig, logger *zap.Logger) (*Browser, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("browser")

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, AllocatorOptions(cfg)...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(logger.Sugar().Debugf))

	// The first Run on a fresh context starts the process.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("browser failed to start or respond: %w", err)
	}

	logger.Info("Browser launched.", zap.Bool("headless", cfg.Headless))
	return &Browser{
		cfg:           cfg,
		logger:        logger,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// NewSession opens a new tab.
func (b *Browser) NewSession() (*Session, error) {
	return New(b.browserCtx, b.cfg, b.logger)
}

// Close shuts the browser down, closing every tab.
func (b *Browser) Close() {
	b.browserCancel()
	b.allocCancel()
	b.logger.Info("Browser closed.")
}

// AllocatorOptions assembles the exec allocator flags for cfg on top of the
// chromedp defaults. Extra args use the "--name" or "--name=value" form.
func AllocatorOptions(cfg config.BrowserConfig) []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", cfg.Headless),
		chromedp.WindowSize(cfg.WindowWidth, cfg.WindowHeight),
	)
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}
	for _, arg := range cfg.Args {
		if name, value, ok := parseFlag(arg); ok {
			opts = append(opts, chromedp.Flag(name, value))
		}
	}
	return opts
}

// parseFlag splits a command line switch into the name and value chromedp.Flag expects.
func parseFlag(arg string) (string, interface{}, bool) {
	arg = strings.TrimLeft(strings.TrimSpace(arg), "-")
	if arg == "" {
		return "", nil, false
	}
	if name, value, found := strings.Cut(arg, "="); found {
		return name, value, name != ""
	}
	return arg, true, true
}

// Session is a single browser tab driven by a humanoid pointer.
type Session struct {
	id       string
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      config.BrowserConfig
	logger   *zap.Logger
	executor *cdpExecutor

	closeOnce sync.Once
}

// New opens a tab under parent, which must carry a chromedp browser or
// allocator context.
func New(parent context.Context, cfg config.BrowserConfig, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New().String()

	tabCtx, cancel := chromedp.NewContext(parent)
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open tab: %w", err)
	}

	s := &Session{
		id:     id,
		ctx:    tabCtx,
		cancel: cancel,
		cfg:    cfg,
		logger: logger.Named("session").With(zap.String("session_id", id)),
	}
	s.executor = newCDPExecutor(tabCtx, s.logger, cfg.MaxEventsPerSecond, cfg.ActionTimeout, s.RunActions)
	s.logger.Debug("Session opened.")
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Executor returns the pointer driver bound to this tab.
func (s *Session) Executor() humanoid.Executor { return s.executor }

// RunActions runs chromedp actions on this tab. They stop when either the
// operation context or the session is canceled.
func (s *Session) RunActions(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := CombineContext(s.ctx, ctx)
	defer cancel()
	return chromedp.Run(runCtx, actions...)
}

// Navigate loads targetURL and waits for the body to be ready.
func (s *Session) Navigate(ctx context.Context, targetURL string) error {
	navCtx, cancel := context.WithTimeout(ctx, s.cfg.NavigationTimeout)
	defer cancel()

	s.logger.Info("Navigating.", zap.String("url", targetURL))
	if err := s.RunActions(navCtx, chromedp.Navigate(targetURL), chromedp.WaitReady("body", chromedp.ByQuery)); err != nil {
		return fmt.Errorf("failed to navigate to '%s': %w", targetURL, err)
	}
	return nil
}

// Close closes the tab. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		s.logger.Debug("Session closed.")
	})
}
