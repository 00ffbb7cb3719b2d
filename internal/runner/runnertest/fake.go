// Package runnertest provides a recording runner.Runner for tests.
package runnertest

import (
	"context"
	"fmt"

	"github.com/ldctl/ldctl/internal/runner"
)

// Fake is a runner.Runner that records commands and replies with canned
// output.
type Fake struct {
	// Replies maps a rendered command line (Command.String) to its output.
	// Commands without a reply succeed with empty output.
	Replies map[string]*runner.Output

	// Errors maps a rendered command line to a start failure.
	Errors map[string]error

	Calls []runner.Command
}

// Run records cmd and returns the configured reply.
func (f *Fake) Run(_ context.Context, cmd runner.Command) (*runner.Output, error) {
	f.Calls = append(f.Calls, cmd)
	key := cmd.String()
	if err, ok := f.Errors[key]; ok {
		return nil, err
	}
	if out, ok := f.Replies[key]; ok {
		return &runner.Output{ExitCode: out.ExitCode, Stdout: out.Stdout}, nil
	}
	return &runner.Output{}, nil
}

// Reply registers stdout text and an exit code for a command line.
func (f *Fake) Reply(line, stdout string, code int) {
	if f.Replies == nil {
		f.Replies = make(map[string]*runner.Output)
	}
	f.Replies[line] = &runner.Output{ExitCode: code, Stdout: stdout}
}

// Lines returns the rendered command lines seen so far.
func (f *Fake) Lines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.String()
	}
	return lines
}

// String summarizes the recorded calls for test failure messages.
func (f *Fake) String() string {
	return fmt.Sprintf("%q", f.Lines())
}
