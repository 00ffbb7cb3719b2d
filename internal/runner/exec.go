package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// ExecRunner runs commands as child processes of the CLI.
type ExecRunner struct {
	// Stdin, Stdout and Stderr can be set for testing; they default to the
	// process's own streams so editors, pagers and tail stay interactive.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger *slog.Logger
}

// Run starts cmd, waits for it, and returns its exit status and, when
// cmd.Capture is set, its stdout.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (*Output, error) {
	bin, err := exec.LookPath(cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", cmd.Name, err)
	}

	if r.Logger != nil {
		r.Logger.Debug("running command", "command", cmd.String(), "capture", cmd.Capture)
	}

	if cmd.Interactive {
		ctx = context.WithoutCancel(ctx)
	}
	c := exec.CommandContext(ctx, bin, cmd.Args...)
	c.Stdin = orReader(r.Stdin, os.Stdin)
	c.Stderr = orWriter(r.Stderr, os.Stderr)

	var stdoutBuf bytes.Buffer
	if cmd.Capture {
		c.Stdout = &stdoutBuf
	} else {
		c.Stdout = orWriter(r.Stdout, os.Stdout)
	}

	err = c.Run()

	output := &Output{Stdout: stdoutBuf.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", cmd.Name, err)
	}

	return output, nil
}

func orReader(r io.Reader, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
