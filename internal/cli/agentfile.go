package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ldctl/ldctl/internal/runner"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catCmd, editCmd, fileCmd)
}

var catCmd = &cobra.Command{
	Use:   "cat <agent>",
	Short: "Display content of agent file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		d, err := s.resolve(cmd, args[0])
		if err != nil {
			return err
		}
		data, err := os.ReadFile(d.Path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", d.Path, err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <agent>",
	Short: "Edit agent file",
	Long:  `Open the agent file in $EDITOR (vim when unset). The editor setting may include arguments, e.g. "code -w".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		d, err := s.resolve(cmd, args[0])
		if err != nil {
			return err
		}
		editor := splitProgram(s.settings.Editor)
		_, err = s.runner.Run(cmd.Context(), runner.Command{
			Name:        editor[0],
			Args:        append(editor[1:], d.Path),
			Interactive: true,
		})
		return err
	},
}

var fileCmd = &cobra.Command{
	Use:   "file <agent>",
	Short: "Print agent file path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		d, err := s.resolve(cmd, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.Path)
		return nil
	},
}

// splitProgram splits an editor or pager setting into program and
// arguments. An empty setting yields a single empty name, which fails
// lookup with a clear error.
func splitProgram(setting string) []string {
	fields := strings.Fields(setting)
	if len(fields) == 0 {
		return []string{""}
	}
	return fields
}
