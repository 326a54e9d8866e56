// File: cmd/config_test.go
package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/xkilldash9x/humanmouse/internal/config"
)

func TestConfigShow(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		out, err := executeCommand(t, "config", "show")
		require.NoError(t, err)
		assert.NotContains(t, out, "# source:")
		assert.Contains(t, out, "navigation_timeout: 1m\n")
		assert.Contains(t, out, "action_timeout: 10s\n")

		var shown config.Config
		require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
		def := config.NewDefaultConfig()
		assert.Equal(t, def.Browser().URL, shown.Browser().URL)
		assert.Equal(t, def.Humanoid().DefaultSteps, shown.Humanoid().DefaultSteps)
		assert.Equal(t, def.Humanoid().StepDelay, shown.Humanoid().StepDelay)
	})

	t.Run("EnvironmentOverride", func(t *testing.T) {
		t.Setenv("HUMANMOUSE_BROWSER_URL", "https://example.test")
		t.Setenv("HUMANMOUSE_HUMANOID_SEED", "99")

		out, err := executeCommand(t, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "url: https://example.test")
		assert.Contains(t, out, "seed: 99")
	})

	t.Run("FileSource", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("browser:\n  window_width: 1920\n"), 0o600))

		out, err := executeCommand(t, "--config", path, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "# source: "+path)
		assert.Contains(t, out, "window_width: 1920")
	})
}
