// File: cmd/plan.go
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/xkilldash9x/humanmouse/internal/humanoid"
	"github.com/xkilldash9x/humanmouse/internal/observability"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// planPoint is one sampled point in the plan output.
type planPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// planOutput is the JSON document printed by the plan command.
type planOutput struct {
	Method string      `json:"method"`
	Steps  int         `json:"steps"`
	Seed   int64       `json:"seed,omitempty"`
	From   planPoint   `json:"from"`
	To     planPoint   `json:"to"`
	Points []planPoint `json:"points"`
}

func newPlanCmd(app *appState) *cobra.Command {
	var (
		from, to string
		steps    int
		method   string
		seed     int64
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print a planned pointer path as JSON without driving a browser",
		Example: `  humanmouse plan --from 0,0 --to 640,480 --method spline
  humanmouse plan --to 300,120 --steps 10 --seed 42 --pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := parsePoint(to)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}

			hcfg := app.cfg.Humanoid().ToHumanoid()
			if cmd.Flags().Changed("seed") {
				hcfg.Seed = seed
			}

			req := humanoid.MotionRequest{End: &end, Steps: steps, Method: humanoid.Method(method)}
			if from != "" {
				start, err := parsePoint(from)
				if err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
				req.Start = &start
			}

			// Planning never touches the executor.
			h := humanoid.New(hcfg, observability.GetLogger(), nil)
			path, err := h.PlanPath(req)
			if err != nil {
				return err
			}

			out := planOutput{
				Method: method,
				Steps:  len(path) - 1,
				Seed:   hcfg.Seed,
				From:   planPoint(path.Start()),
				To:     planPoint(path.End()),
				Points: make([]planPoint, len(path)),
			}
			for i, p := range path {
				out.Points[i] = planPoint(p)
			}

			var data []byte
			if pretty {
				data, err = json.MarshalIndent(out, "", "  ")
			} else {
				data, err = json.Marshal(out)
			}
			if err != nil {
				return fmt.Errorf("failed to encode path: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start point as x,y (default: the configured initial position)")
	cmd.Flags().StringVar(&to, "to", "", "end point as x,y")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of segments (default: humanoid.default_steps)")
	cmd.Flags().StringVar(&method, "method", string(humanoid.MethodBezier), "trajectory method: bezier, spline or linear")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible jitter")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// parsePoint parses "x,y" into a point.
func parsePoint(s string) (humanoid.Vector2D, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return humanoid.Vector2D{}, fmt.Errorf("expected x,y but got '%s'", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return humanoid.Vector2D{}, fmt.Errorf("bad x coordinate '%s': %w", xs, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return humanoid.Vector2D{}, fmt.Errorf("bad y coordinate '%s': %w", ys, err)
	}
	return humanoid.Vector2D{X: x, Y: y}, nil
}
