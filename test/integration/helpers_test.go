//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir   string // HOME and LDCTL_HOME parent
	AgentsDir string // ~/Library/LaunchAgents inside HomeDir
	BinDir    string // prepended to PATH; holds the stub launchctl
	CallLog   string // every stub invocation is appended here
}

// setupTestEnv creates a sandboxed HOME with an agents directory and a stub
// launchctl script on PATH that records its arguments and prints canned
// output. The env vars are restored after the test.
func setupTestEnv(t *testing.T, agents ...string) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		BinDir:  t.TempDir(),
	}
	env.AgentsDir = filepath.Join(env.HomeDir, "Library", "LaunchAgents")
	env.CallLog = filepath.Join(env.BinDir, "calls.log")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("LDCTL_HOME", filepath.Join(env.HomeDir, ".ldctl"))
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	if err := os.MkdirAll(env.AgentsDir, 0755); err != nil {
		t.Fatalf("creating agents dir: %v", err)
	}
	for _, a := range agents {
		writeFile(t, filepath.Join(env.AgentsDir, a+".plist"), "<plist>"+a+"</plist>\n")
	}

	return env
}

// installStub writes an executable named name into BinDir. The script logs
// "name args..." to CallLog and then runs body.
func installStub(t *testing.T, env *testEnv, name, body string) {
	t.Helper()
	script := "#!/bin/sh\n" +
		"echo \"" + name + " $*\" >> '" + env.CallLog + "'\n" +
		body + "\n"
	path := filepath.Join(env.BinDir, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing stub %s: %v", name, err)
	}
}

// calls returns the recorded stub invocations.
func calls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.CallLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading call log: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
