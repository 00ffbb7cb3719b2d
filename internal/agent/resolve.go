package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
)

// ErrNotFound is returned when no descriptor matches a query.
var ErrNotFound = errors.New("no agents found")

// Resolver maps a name fragment to exactly one descriptor in Dir.
type Resolver struct {
	Dir string
	Ext string

	// In and Out carry the disambiguation prompt. Out also receives the
	// numbered candidate list.
	In  io.Reader
	Out io.Writer

	Logger *slog.Logger
}

// Resolve finds the descriptor matching query.
//
// A single substring match wins outright. Several matches are narrowed to
// a dot-delimited exact segment ("*.<query>.*"), then to a trailing
// segment ("*.<query>.<ext>"); if neither leaves exactly one, the user
// picks from a numbered list.
func (r *Resolver) Resolve(query string) (Descriptor, error) {
	ext := r.ext()

	matches, err := r.glob("*" + query + "*." + ext)
	if err != nil {
		return Descriptor{}, err
	}

	var path string
	switch len(matches) {
	case 0:
		return Descriptor{}, fmt.Errorf("%w for %q", ErrNotFound, query)
	case 1:
		path = matches[0]
	default:
		exact, err := r.narrow(query, ext)
		if err != nil {
			return Descriptor{}, err
		}
		if exact != "" {
			path = exact
			break
		}

		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = NameFromPath(m, ext)
		}
		fmt.Fprintf(r.Out, "%d agents found for %q:\n", len(matches), query)
		idx, err := Prompt(bufio.NewReader(r.In), r.Out, names)
		if err != nil {
			return Descriptor{}, err
		}
		path = matches[idx]
	}

	d := NewDescriptor(path, ext)
	r.logger().Debug("resolved agent", "query", query, "plist", d.Path, "name", d.Name)
	return d, nil
}

// narrow returns the single match of the exact-segment patterns, or "" when
// each of them leaves zero or several candidates.
func (r *Resolver) narrow(query, ext string) (string, error) {
	for _, pattern := range []string{
		"*." + query + ".*" + ext,
		"*." + query + "." + ext,
	} {
		matches, err := r.glob(pattern)
		if err != nil {
			return "", err
		}
		if len(matches) == 1 {
			return matches[0], nil
		}
	}
	return "", nil
}

func (r *Resolver) glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(r.Dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("searching %s for %q: %w", r.Dir, pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

func (r *Resolver) ext() string {
	if r.Ext == "" {
		return DefaultExt
	}
	return r.Ext
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
