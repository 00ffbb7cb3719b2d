package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExt is the descriptor file extension used by launchd.
const DefaultExt = "plist"

// Descriptor is one agent descriptor file and its short name.
type Descriptor struct {
	Path string
	Name string
}

// NewDescriptor builds a Descriptor from a file path, deriving the short
// name by stripping the directory and the ".<ext>" suffix.
func NewDescriptor(path, ext string) Descriptor {
	return Descriptor{Path: path, Name: NameFromPath(path, ext)}
}

// NameFromPath returns the basename of path without the ".<ext>" suffix.
func NameFromPath(path, ext string) string {
	return strings.TrimSuffix(filepath.Base(path), "."+ext)
}

// Collection is the set of descriptor short names present in an agents
// directory. It is computed once per invocation and passed to the output
// filters explicitly.
type Collection struct {
	names []string
}

// NewCollection returns a Collection holding the given names. Empty names
// are dropped since they would match every line.
func NewCollection(names ...string) Collection {
	var c Collection
	for _, n := range names {
		if n != "" {
			c.names = append(c.names, n)
		}
	}
	sort.Strings(c.names)
	return c
}

// LoadCollection lists dir and collects the short names of every file
// ending in ".<ext>". A missing directory yields an empty collection.
func LoadCollection(dir, ext string) (Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Collection{}, nil
		}
		return Collection{}, fmt.Errorf("listing agents directory %s: %w", dir, err)
	}

	var names []string
	suffix := "." + ext
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), suffix))
	}
	return NewCollection(names...), nil
}

// Len reports how many agents the collection holds.
func (c Collection) Len() int { return len(c.names) }

// MatchesLine reports whether line mentions at least one known agent.
func (c Collection) MatchesLine(line string) bool {
	for _, n := range c.names {
		if strings.Contains(line, n) {
			return true
		}
	}
	return false
}
