// File: cmd/plan_test.go
package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/humanmouse/internal/config"
	"github.com/xkilldash9x/humanmouse/internal/humanoid"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	return v
}

func decodePlan(t *testing.T, out string) planOutput {
	t.Helper()
	var plan planOutput
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	return plan
}

func TestPlanCmd(t *testing.T) {
	t.Run("LinearIsExact", func(t *testing.T) {
		out, err := executeCommand(t, "plan", "--from", "0,0", "--to", "100,0", "--steps", "4", "--method", "linear")
		require.NoError(t, err)

		plan := decodePlan(t, out)
		assert.Equal(t, "linear", plan.Method)
		assert.Equal(t, 4, plan.Steps)
		assert.Equal(t, []planPoint{{0, 0}, {25, 0}, {50, 0}, {75, 0}, {100, 0}}, plan.Points)
	})

	t.Run("EndpointsForEveryMethod", func(t *testing.T) {
		for _, m := range []string{"bezier", "spline", "linear", "zigzag"} {
			t.Run(m, func(t *testing.T) {
				out, err := executeCommand(t, "plan", "--from", "10,20", "--to", "300,120", "--steps", "12", "--method", m)
				require.NoError(t, err)

				plan := decodePlan(t, out)
				require.Len(t, plan.Points, 13)
				assert.Equal(t, planPoint{10, 20}, plan.From)
				assert.Equal(t, planPoint{300, 120}, plan.To)
				assert.Equal(t, plan.From, plan.Points[0])
				assert.Equal(t, plan.To, plan.Points[12])
			})
		}
	})

	t.Run("DefaultsFromConfig", func(t *testing.T) {
		out, err := executeCommand(t, "plan", "--to", "400,400")
		require.NoError(t, err)

		plan := decodePlan(t, out)
		def := humanoid.DefaultConfig()
		assert.Equal(t, def.DefaultSteps, plan.Steps)
		assert.Equal(t, planPoint(humanoid.DefaultPosition), plan.From)
	})

	t.Run("SeedIsReproducible", func(t *testing.T) {
		args := []string{"plan", "--from", "0,0", "--to", "500,300", "--seed", "42", "--steps", "8"}
		first, err := executeCommand(t, args...)
		require.NoError(t, err)
		second, err := executeCommand(t, args...)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, int64(42), decodePlan(t, first).Seed)
	})

	t.Run("Pretty", func(t *testing.T) {
		out, err := executeCommand(t, "plan", "--to", "1,1", "--steps", "1", "--pretty")
		require.NoError(t, err)
		assert.Contains(t, out, "\n  \"method\"")
	})

	t.Run("MissingTo", func(t *testing.T) {
		_, err := executeCommand(t, "plan", "--from", "0,0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "\"to\" not set")
	})

	t.Run("InvalidPoints", func(t *testing.T) {
		_, err := executeCommand(t, "plan", "--to", "nowhere")
		require.ErrorContains(t, err, "invalid --to")

		_, err = executeCommand(t, "plan", "--to", "1,1", "--from", "1;1")
		require.ErrorContains(t, err, "invalid --from")
	})
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    humanoid.Vector2D
		wantErr string
	}{
		{in: "10,20", want: humanoid.Vector2D{X: 10, Y: 20}},
		{in: " 1.5 , -3 ", want: humanoid.Vector2D{X: 1.5, Y: -3}},
		{in: "10", wantErr: "expected x,y"},
		{in: "a,2", wantErr: "bad x coordinate"},
		{in: "2,b", wantErr: "bad y coordinate"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePoint(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
