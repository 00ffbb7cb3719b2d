package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list [agent]",
	Short: "List agent(s)",
	Long: `With an argument, show launchctl's list entry for that agent.

Without one, show the header and the rows of every agent in the agents
directory, ordered by label.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show every loaded job, not only those in the agents directory")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		d, err := s.resolve(cmd, args[0])
		if err != nil {
			return err
		}
		return s.client.ListAgent(cmd.Context(), d)
	}

	known, err := s.collection()
	if err != nil {
		return err
	}
	lines, err := s.client.List(cmd.Context(), known, listAll)
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), l)
	}
	return nil
}
