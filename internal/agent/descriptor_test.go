package agent

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNameFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/Users/me/Library/LaunchAgents/com.foo.bar.plist", "com.foo.bar"},
		{"com.foo.plist", "com.foo"},
		{"/tmp/plist.plist", "plist"},
		{"/tmp/no-extension", "no-extension"},
	}
	for _, tt := range tests {
		if got := NameFromPath(tt.path, "plist"); got != tt.want {
			t.Errorf("NameFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoadCollection(t *testing.T) {
	dir := setupAgentsDir(t, "com.b.plist", "com.a.plist", "README.md")
	if err := os.Mkdir(filepath.Join(dir, "sub.plist"), 0755); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCollection(dir, "plist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"com.a", "com.b"}
	if got := c.names; !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
}

func TestLoadCollection_MissingDir(t *testing.T) {
	c, err := LoadCollection(filepath.Join(t.TempDir(), "missing"), "plist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty collection, got %v", c.names)
	}
}

func TestCollection_MatchesLine(t *testing.T) {
	c := NewCollection("com.foo.bar", "")

	tests := []struct {
		line string
		want bool
	}{
		{"123\t0\tcom.foo.bar", true},
		{`"com.foo.bar" => disabled`, true},
		{"456\t0\tcom.other.baz", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := c.MatchesLine(tt.line); got != tt.want {
			t.Errorf("MatchesLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}

	if c.Len() != 1 {
		t.Errorf("expected empty name to be dropped, got %v", c.names)
	}
}
