package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ldctl/ldctl/internal/agent"
	"github.com/ldctl/ldctl/internal/branding"
	"github.com/ldctl/ldctl/internal/config"
	"github.com/ldctl/ldctl/internal/launchctl"
	"github.com/ldctl/ldctl/internal/runner"
	"github.com/spf13/cobra"
)

var verbose bool

// Process hooks, replaced in tests.
var (
	newRunner = func(logger *slog.Logger) runner.Runner {
		return &runner.ExecRunner{Logger: logger}
	}
	promptInput io.Reader = os.Stdin
	currentUID            = os.Getuid
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` resolves short agent-name fragments to descriptor files in
~/Library/LaunchAgents and runs launchctl against them.

An argument like "backup" matches any *backup*.plist. When several files
match, an exact dot-delimited segment (*.backup.*plist) wins; otherwise you
pick one from a numbered list.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log resolved agents and external commands")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// session carries the per-invocation dependencies of a command.
type session struct {
	settings *config.Settings
	logger   *slog.Logger
	runner   runner.Runner
	client   *launchctl.Client
}

// newSession resolves settings and wires the logger, runner, and launchctl
// client for cmd.
func newSession(cmd *cobra.Command) (*session, error) {
	settings, err := config.Resolve()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), logLevel(settings.LogLevel, verbose))
	r := newRunner(logger)
	client := launchctl.New(r, settings.Launchctl)
	client.UID = currentUID()

	return &session{
		settings: settings,
		logger:   logger,
		runner:   r,
		client:   client,
	}, nil
}

// resolve maps a name fragment to one descriptor, prompting on stderr when
// the fragment is ambiguous.
func (s *session) resolve(cmd *cobra.Command, query string) (agent.Descriptor, error) {
	if !isTerminal(promptInput) {
		s.logger.Debug("selection prompt is not reading from a terminal")
	}
	r := &agent.Resolver{
		Dir:    s.settings.AgentsDir,
		Ext:    s.settings.Extension,
		In:     promptInput,
		Out:    cmd.ErrOrStderr(),
		Logger: s.logger,
	}
	return r.Resolve(query)
}

// collection lists the known agents for output filtering.
func (s *session) collection() (agent.Collection, error) {
	return agent.LoadCollection(s.settings.AgentsDir, s.settings.Extension)
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr; use ExitCode to map them to a status.
func Execute(version, commit, date string) error {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
	}
	return err
}

// ExitCode maps an Execute error to a process exit status. A failed
// launchctl call exits with launchctl's own status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}
	return 1
}
