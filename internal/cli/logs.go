package cli

import (
	"fmt"
	"strconv"

	"github.com/ldctl/ldctl/internal/runner"
	"github.com/spf13/cobra"
)

var tailLines int

func init() {
	tailCmd.Flags().IntVarP(&tailLines, "lines", "n", 0, "Lines of backlog to show before following (default from config, 50)")
	rootCmd.AddCommand(logfilesCmd, tailCmd, lessCmd)
}

var logfilesCmd = &cobra.Command{
	Use:   "logfiles <agent>",
	Short: "Print agent log files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, files, err := agentLogFiles(cmd, args[0])
		if err != nil {
			return err
		}
		s.logger.Debug("discovered log files", "count", len(files))
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

var tailCmd = &cobra.Command{
	Use:   "tail <agent>",
	Short: "Follow agent log files",
	Long: `Follow each of the agent's stdout/stderr log files with tail -f, one after
another. Each follow blocks until tail exits; an interrupt stops tail and
skips the remaining files.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, files, err := agentLogFiles(cmd, args[0])
		if err != nil {
			return err
		}

		n := tailLines
		if n <= 0 {
			n = s.settings.TailLines
		}
		flag := "-" + strconv.Itoa(n) + "f"

		ctx := cmd.Context()
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tail %s %s\n", flag, f)
			if _, err := s.runner.Run(ctx, runner.Command{Name: "tail", Args: []string{flag, f}}); err != nil {
				return err
			}
		}
		return ctx.Err()
	},
}

var lessCmd = &cobra.Command{
	Use:   "less <agent>",
	Short: "Page agent log files",
	Long:  `Open all of the agent's log files in $PAGER (less when unset), positioned at the end.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, files, err := agentLogFiles(cmd, args[0])
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return nil
		}

		pager := splitProgram(s.settings.Pager)
		pagerArgs := append(pager[1:], "+G")
		pagerArgs = append(pagerArgs, files...)
		_, err = s.runner.Run(cmd.Context(), runner.Command{Name: pager[0], Args: pagerArgs, Interactive: true})
		return err
	},
}

// agentLogFiles resolves query and asks launchd for the agent's log paths.
func agentLogFiles(cmd *cobra.Command, query string) (*session, []string, error) {
	s, err := newSession(cmd)
	if err != nil {
		return nil, nil, err
	}
	d, err := s.resolve(cmd, query)
	if err != nil {
		return nil, nil, err
	}
	files, err := s.client.LogFiles(cmd.Context(), d)
	if err != nil {
		return nil, nil, err
	}
	return s, files, nil
}
