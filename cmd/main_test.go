// File: cmd/main_test.go
package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/mitchellh/go-homedir"

	"github.com/xkilldash9x/humanmouse/internal/observability"
)

func TestMain(m *testing.M) {
	// Tests point HOME at temp dirs.
	homedir.DisableCache = true
	os.Exit(m.Run())
}

// executeCommand runs a fresh command tree inside an isolated working and home
// directory, so no config file from the developer's machine is picked up.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("HUMANMOUSE_LOGGER_LEVEL", "error")

	observability.ResetForTest()
	t.Cleanup(observability.ResetForTest)

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}
