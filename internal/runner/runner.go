package runner

import (
	"context"
	"fmt"
	"strings"
)

// Runner starts external commands.
type Runner interface {
	// Run executes cmd and waits for it to exit. A non-zero exit status is
	// reported in Output.ExitCode, not as an error; the error return is
	// reserved for commands that could not be started at all.
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// Command describes one external invocation.
type Command struct {
	Name string
	Args []string

	// Capture collects stdout into Output.Stdout instead of passing it
	// through to the terminal. Stderr is always passed through.
	Capture bool

	// Interactive marks a full-screen child such as an editor or pager. It
	// handles terminal signals itself and is not killed when ctx is
	// cancelled, so it can restore the terminal before exiting.
	Interactive bool
}

// String renders the command line for logs and echo lines.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Output captures the result of a command.
type Output struct {
	ExitCode int
	Stdout   string
}

// ExitError reports a command that exited with a non-zero status where
// success was required.
type ExitError struct {
	Command Command
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

// Check returns an *ExitError when out carries a non-zero exit status.
func Check(cmd Command, out *Output) error {
	if out.ExitCode != 0 {
		return &ExitError{Command: cmd, Code: out.ExitCode}
	}
	return nil
}
