package agent

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		n       int
		idx     int
		outcome SelectionOutcome
	}{
		{"zero", "0", 3, 0, SelectionOutOfRange},
		{"one past end", "4", 3, 0, SelectionOutOfRange},
		{"negative", "-1", 3, 0, SelectionOutOfRange},
		{"letters", "abc", 3, 0, SelectionNotNumber},
		{"empty", "", 3, 0, SelectionNotNumber},
		{"decimal", "1.5", 3, 0, SelectionNotNumber},
		{"first", "1", 3, 0, SelectionValid},
		{"last", "3", 3, 2, SelectionValid},
		{"trailing newline", "2\n", 3, 1, SelectionValid},
		{"surrounding spaces", "  2 ", 3, 1, SelectionValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, outcome := ParseSelection(tt.input, tt.n)
			if outcome != tt.outcome {
				t.Fatalf("ParseSelection(%q, %d) outcome = %d, want %d", tt.input, tt.n, outcome, tt.outcome)
			}
			if idx != tt.idx {
				t.Errorf("ParseSelection(%q, %d) index = %d, want %d", tt.input, tt.n, idx, tt.idx)
			}
		})
	}
}

func TestPrompt_EveryValidChoice(t *testing.T) {
	items := []string{"alpha", "beta", "gamma"}
	for k := 1; k <= len(items); k++ {
		var out bytes.Buffer
		input := strings.Repeat("x\n", k) + string(rune('0'+k)) + "\n"
		idx, err := Prompt(bufio.NewReader(strings.NewReader(input)), &out, items)
		if err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		if idx != k-1 {
			t.Errorf("k=%d: expected index %d, got %d", k, k-1, idx)
		}
		if got := strings.Count(out.String(), "Select: "); got != k+1 {
			t.Errorf("k=%d: expected %d prompts, got %d", k, k+1, got)
		}
	}
}

func TestPrompt_UnterminatedFinalLine(t *testing.T) {
	var out bytes.Buffer
	idx, err := Prompt(bufio.NewReader(strings.NewReader("2")), &out, []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}
}

func TestPrompt_EmptyInputAborts(t *testing.T) {
	var out bytes.Buffer
	_, err := Prompt(bufio.NewReader(strings.NewReader("")), &out, []string{"a", "b"})
	if err != ErrSelectionAborted {
		t.Fatalf("expected ErrSelectionAborted, got %v", err)
	}
}
