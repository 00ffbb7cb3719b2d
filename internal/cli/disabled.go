package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(disabledCmd)
}

var disabledCmd = &cobra.Command{
	Use:   "disabled",
	Short: "Print disabled agents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		known, err := s.collection()
		if err != nil {
			return err
		}
		names, err := s.client.DisabledAgents(cmd.Context(), known)
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}
