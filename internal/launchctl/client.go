package launchctl

import (
	"context"
	"fmt"
	"os"

	"github.com/ldctl/ldctl/internal/agent"
	"github.com/ldctl/ldctl/internal/runner"
)

// DefaultBinary is the launchctl executable looked up on PATH.
const DefaultBinary = "launchctl"

// Client issues launchctl commands in the per-user GUI domain.
type Client struct {
	Runner runner.Runner
	Binary string
	UID    int
}

// New returns a Client for the current user.
func New(r runner.Runner, binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{Runner: r, Binary: binary, UID: os.Getuid()}
}

// Scope returns the GUI domain target, e.g. "gui/501".
func (c *Client) Scope() string {
	return fmt.Sprintf("gui/%d", c.UID)
}

// Target returns the service target for an agent, e.g. "gui/501/com.foo".
func (c *Client) Target(name string) string {
	return c.Scope() + "/" + name
}

// Bootstrap loads the descriptor into the GUI domain.
func (c *Client) Bootstrap(ctx context.Context, d agent.Descriptor) error {
	return c.checked(ctx, "bootstrap", c.Scope(), d.Path)
}

// Bootout unloads the descriptor from the GUI domain.
func (c *Client) Bootout(ctx context.Context, d agent.Descriptor) error {
	return c.checked(ctx, "bootout", c.Scope(), d.Path)
}

// Enable marks the agent enabled.
func (c *Client) Enable(ctx context.Context, d agent.Descriptor) error {
	return c.checked(ctx, "enable", c.Target(d.Name))
}

// Disable marks the agent disabled.
func (c *Client) Disable(ctx context.Context, d agent.Descriptor) error {
	return c.checked(ctx, "disable", c.Target(d.Name))
}

// Blame prints why the agent was last started.
func (c *Client) Blame(ctx context.Context, d agent.Descriptor) error {
	return c.checked(ctx, "blame", c.Target(d.Name))
}

// Kickstart starts the agent. A non-zero exit is ignored.
func (c *Client) Kickstart(ctx context.Context, d agent.Descriptor) error {
	return c.tolerated(ctx, "kickstart", c.Target(d.Name))
}

// Kill sends SIGTERM to the agent. A non-zero exit is ignored.
func (c *Client) Kill(ctx context.Context, d agent.Descriptor) error {
	return c.tolerated(ctx, "kill", "SIGTERM", c.Target(d.Name))
}

// Print shows launchd's view of the agent. A non-zero exit is ignored.
func (c *Client) Print(ctx context.Context, d agent.Descriptor) error {
	return c.tolerated(ctx, "print", c.Target(d.Name))
}

// ListAgent shows the list entry for one agent. A non-zero exit is ignored.
func (c *Client) ListAgent(ctx context.Context, d agent.Descriptor) error {
	return c.tolerated(ctx, "list", d.Name)
}

// Hostinfo prints host information.
func (c *Client) Hostinfo(ctx context.Context) error {
	return c.checked(ctx, "hostinfo")
}

// Variant prints the launchd variant.
func (c *Client) Variant(ctx context.Context) error {
	return c.checked(ctx, "variant")
}

// Version prints the launchd version banner.
func (c *Client) Version(ctx context.Context) error {
	return c.checked(ctx, "version")
}

// DisabledAgents returns the names of known agents launchd reports as
// disabled in the GUI domain.
func (c *Client) DisabledAgents(ctx context.Context, known agent.Collection) ([]string, error) {
	text, err := c.capture(ctx, true, "print-disabled", c.Scope())
	if err != nil {
		return nil, err
	}
	return FilterDisabled(text, known), nil
}

// LogFiles returns the stdout/stderr paths configured for the agent.
func (c *Client) LogFiles(ctx context.Context, d agent.Descriptor) ([]string, error) {
	text, err := c.capture(ctx, true, "print", c.Target(d.Name))
	if err != nil {
		return nil, err
	}
	return FilterLogPaths(text), nil
}

// List returns the header and the list lines of known agents, ordered by
// label. When all is set the known-agent filter is skipped.
func (c *Client) List(ctx context.Context, known agent.Collection, all bool) ([]string, error) {
	text, err := c.capture(ctx, false, "list")
	if err != nil {
		return nil, err
	}
	if all {
		return SortList(Lines(text)), nil
	}
	return FilterList(text, known), nil
}

// VersionString returns the raw output of launchctl version.
func (c *Client) VersionString(ctx context.Context) (string, error) {
	return c.capture(ctx, true, "version")
}

func (c *Client) command(capture bool, args ...string) runner.Command {
	return runner.Command{Name: c.Binary, Args: args, Capture: capture}
}

func (c *Client) checked(ctx context.Context, args ...string) error {
	cmd := c.command(false, args...)
	out, err := c.Runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	return runner.Check(cmd, out)
}

func (c *Client) tolerated(ctx context.Context, args ...string) error {
	_, err := c.Runner.Run(ctx, c.command(false, args...))
	return err
}

func (c *Client) capture(ctx context.Context, check bool, args ...string) (string, error) {
	cmd := c.command(true, args...)
	out, err := c.Runner.Run(ctx, cmd)
	if err != nil {
		return "", err
	}
	if check {
		if err := runner.Check(cmd, out); err != nil {
			return "", err
		}
	}
	return out.Stdout, nil
}
