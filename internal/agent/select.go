package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrSelectionAborted is returned when the prompt input ends before a
// valid selection was made.
var ErrSelectionAborted = errors.New("selection aborted")

// SelectionOutcome classifies one line of prompt input.
type SelectionOutcome int

const (
	SelectionValid SelectionOutcome = iota
	SelectionNotNumber
	SelectionOutOfRange
)

// ParseSelection validates a 1-based choice among n candidates and
// returns the 0-based index when the outcome is SelectionValid.
func ParseSelection(input string, n int) (int, SelectionOutcome) {
	num, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, SelectionNotNumber
	}
	if num < 1 || num > n {
		return 0, SelectionOutOfRange
	}
	return num - 1, SelectionValid
}

// Prompt prints items as a numbered list and reads lines from reader until
// one is a valid choice. Invalid input is reported and asked again.
func Prompt(reader *bufio.Reader, w io.Writer, items []string) (int, error) {
	for i, item := range items {
		fmt.Fprintf(w, "  [%d] %s\n", i+1, item)
	}

	for {
		fmt.Fprint(w, "Select: ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("reading selection: %w", err)
		}
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return 0, ErrSelectionAborted
		}

		idx, outcome := ParseSelection(line, len(items))
		switch outcome {
		case SelectionValid:
			return idx, nil
		case SelectionOutOfRange:
			fmt.Fprintln(w, "number not in range, try again")
		case SelectionNotNumber:
			fmt.Fprintln(w, "not a valid number, try again")
		}

		if err != nil {
			// Final unterminated line was invalid and nothing follows.
			return 0, ErrSelectionAborted
		}
	}
}
