package launchctl

import (
	"sort"
	"strings"

	"github.com/ldctl/ldctl/internal/agent"
)

// Lines splits command output into lines, dropping a trailing newline and
// carriage returns.
func Lines(text string) []string {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// FilterDisabled extracts agent names from print-disabled output. A line
// qualifies when it contains "disabled" and mentions a known agent; the
// name is its first double-quoted token.
func FilterDisabled(text string, known agent.Collection) []string {
	var names []string
	for _, line := range Lines(text) {
		if !strings.Contains(line, "disabled") || !known.MatchesLine(line) {
			continue
		}
		parts := strings.Split(line, `"`)
		if len(parts) < 2 {
			continue
		}
		names = append(names, parts[1])
	}
	return names
}

// FilterLogPaths extracts log file paths from print output: lines that
// contain "std" and, in any case, "path", taking the field after " = ".
func FilterLogPaths(text string) []string {
	var paths []string
	for _, line := range Lines(text) {
		if !strings.Contains(line, "std") || !strings.Contains(strings.ToLower(line), "path") {
			continue
		}
		fields := strings.Split(line, " = ")
		if len(fields) < 2 {
			continue
		}
		if p := strings.TrimSpace(fields[1]); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// FilterList keeps the header ("PID") and lines that mention a known agent,
// then orders them with SortList.
func FilterList(text string, known agent.Collection) []string {
	var kept []string
	for _, line := range Lines(text) {
		if isListHeader(line) || known.MatchesLine(line) {
			kept = append(kept, line)
		}
	}
	return SortList(kept)
}

// SortList puts header lines first and orders the rest by their third
// whitespace-delimited field, which is the label column of launchctl list.
// Lines with fewer fields sort by an empty key.
func SortList(lines []string) []string {
	var header, body []string
	for _, l := range lines {
		if isListHeader(l) {
			header = append(header, l)
		} else {
			body = append(body, l)
		}
	}
	sort.SliceStable(body, func(i, j int) bool {
		return labelField(body[i]) < labelField(body[j])
	})
	return append(header, body...)
}

func isListHeader(line string) bool {
	return strings.Contains(line, "PID")
}

func labelField(line string) string {
	f := strings.Fields(line)
	if len(f) < 3 {
		return ""
	}
	return f[2]
}
