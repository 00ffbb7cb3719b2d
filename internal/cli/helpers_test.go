package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ldctl/ldctl/internal/runner"
	"github.com/ldctl/ldctl/internal/runner/runnertest"
	"github.com/spf13/viper"
)

// testEnv holds the sandbox for one command invocation.
type testEnv struct {
	Home      string
	AgentsDir string
	Fake      *runnertest.Fake
}

// setupTestEnv points HOME and the config directory at temp dirs, creates
// the given descriptors under ~/Library/LaunchAgents, and swaps the process
// runner for a fake. Everything is restored when the test ends.
func setupTestEnv(t *testing.T, agents ...string) *testEnv {
	t.Helper()

	home := t.TempDir()
	env := &testEnv{
		Home:      home,
		AgentsDir: filepath.Join(home, "Library", "LaunchAgents"),
		Fake:      &runnertest.Fake{},
	}

	t.Setenv("HOME", home)
	t.Setenv("LDCTL_HOME", filepath.Join(home, ".ldctl"))
	for _, k := range []string{"EDITOR", "PAGER", "LDCTL_EDITOR", "LDCTL_PAGER", "LDCTL_AGENTS_DIR", "LDCTL_TAIL_LINES", "LDCTL_LOG_LEVEL", "LDCTL_LAUNCHCTL", "LDCTL_EXTENSION"} {
		t.Setenv(k, "")
	}

	if err := os.MkdirAll(env.AgentsDir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, a := range agents {
		content := "<plist>" + a + "</plist>\n"
		if err := os.WriteFile(filepath.Join(env.AgentsDir, a+".plist"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	viper.Reset()
	origRunner, origInput, origUID := newRunner, promptInput, currentUID
	newRunner = func(*slog.Logger) runner.Runner { return env.Fake }
	promptInput = strings.NewReader("")
	currentUID = func() int { return 501 }
	verbose, listAll, versionShort, tailLines = false, false, false, 0

	t.Cleanup(func() {
		newRunner, promptInput, currentUID = origRunner, origInput, origUID
		viper.Reset()
	})

	return env
}

// plist returns the descriptor path for name.
func (e *testEnv) plist(name string) string {
	return filepath.Join(e.AgentsDir, name+".plist")
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

// executeContext is execute with a caller-controlled context.
func executeContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

// withInput feeds the selection prompt.
func withInput(s string) {
	promptInput = strings.NewReader(s)
}
