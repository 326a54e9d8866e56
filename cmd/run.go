// File: cmd/run.go
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/humanmouse/internal/browser/session"
	"github.com/xkilldash9x/humanmouse/internal/config"
	"github.com/xkilldash9x/humanmouse/internal/humanoid"
	"github.com/xkilldash9x/humanmouse/internal/observability"
)

// launchBrowser is swapped out in tests.
var launchBrowser = session.Launch

func newRunCmd(app *appState) *cobra.Command {
	var (
		targetURL  string
		scriptPath string
		sessions   int
		headless   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a page and run a behavior script on one or more independent tabs",
		Example: `  humanmouse run --url https://example.com --script checkout.yaml
  humanmouse run --script ~/scripts/browse.yaml --sessions 4 --headless=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessions < 1 {
				return fmt.Errorf("--sessions must be at least 1, got %d", sessions)
			}

			script, err := humanoid.LoadScript(scriptPath)
			if err != nil {
				return err
			}

			if targetURL != "" {
				app.cfg.SetBrowserURL(targetURL)
			}
			if cmd.Flags().Changed("headless") {
				app.cfg.SetBrowserHeadless(headless)
			}

			return runScript(cmd.Context(), app.cfg, script, sessions)
		},
	}

	cmd.Flags().StringVarP(&targetURL, "url", "u", "", "page to open (default: browser.url)")
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "YAML behavior script")
	cmd.Flags().IntVarP(&sessions, "sessions", "n", 1, "number of concurrent tabs, each with its own pointer")
	cmd.Flags().BoolVar(&headless, "headless", true, "run the browser without a window")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

// runScript launches one browser and runs the script on count tabs in
// parallel. The first failing tab cancels the others.
func runScript(ctx context.Context, cfg config.Interface, script *humanoid.Script, count int) error {
	runID := uuid.New().String()
	logger := observability.GetLogger().Named("run").With(zap.String("run_id", runID))
	browserCfg := cfg.Browser()

	b, err := launchBrowser(ctx, browserCfg, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	started := time.Now()
	logger.Info("Running behavior script.",
		zap.String("script", script.Name),
		zap.Int("steps", len(script.Steps)),
		zap.Int("sessions", count),
		zap.String("url", browserCfg.URL),
	)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		hcfg := sessionHumanoidConfig(cfg.Humanoid(), i)
		g.Go(func() error {
			s, err := b.NewSession()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Navigate(gctx, browserCfg.URL); err != nil {
				return err
			}

			h := humanoid.New(hcfg, logger, s.Executor())
			if err := h.RunScript(gctx, script.Steps); err != nil {
				return fmt.Errorf("session %s: %w", h.ID(), err)
			}
			logger.Debug("Session finished.", zap.String("session_id", h.ID()))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Behavior script completed.", zap.Duration("elapsed", time.Since(started)))
	return nil
}

// sessionHumanoidConfig derives the simulator config for the index-th tab. A
// fixed seed is offset per tab so concurrent pointers do not move in lockstep.
func sessionHumanoidConfig(hc config.HumanoidConfig, index int) humanoid.Config {
	c := hc.ToHumanoid()
	if c.Seed != 0 {
		c.Seed += int64(index)
	}
	return c
}
