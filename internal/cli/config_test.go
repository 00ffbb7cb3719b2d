package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/ldctl/ldctl/internal/config"
)

func TestConfig_SetGetValidate(t *testing.T) {
	setupTestEnv(t)

	stdout, _, err := execute(t, "config", "set", "pager", "bat")
	if err != nil {
		t.Fatalf("config set: %v", err)
	}
	if stdout != "Set pager = bat\n" {
		t.Errorf("unexpected output %q", stdout)
	}

	stdout, _, err = execute(t, "config", "get", "pager")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if stdout != "bat\n" {
		t.Errorf("unexpected output %q", stdout)
	}

	stdout, _, err = execute(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.HasSuffix(stdout, "is valid\n") {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestConfig_ValidateReportsIssues(t *testing.T) {
	setupTestEnv(t)
	if err := config.EnsureDir(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(config.FilePath(), []byte("tail_lines: 0\ncolour: red\n"), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, "config", "validate")
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(stdout, "/tail_lines") {
		t.Errorf("expected tail_lines issue, got:\n%s", stdout)
	}
}

func TestConfig_Path(t *testing.T) {
	setupTestEnv(t)

	stdout, _, err := execute(t, "config", "path")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != config.FilePath()+"\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestConfig_SetUnknownKey(t *testing.T) {
	setupTestEnv(t)

	if _, _, err := execute(t, "config", "set", "colour", "red"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}
