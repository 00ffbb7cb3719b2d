package cli

import (
	"fmt"

	"github.com/ldctl/ldctl/internal/launchctl"
	"github.com/spf13/cobra"
)

var versionShort bool

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print launchd's version number only")
	rootCmd.AddCommand(hostinfoCmd, variantCmd, versionCmd)
}

var hostinfoCmd = &cobra.Command{
	Use:   "hostinfo",
	Short: "Print host information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.client.Hostinfo(cmd.Context())
	},
}

var variantCmd = &cobra.Command{
	Use:   "variant",
	Short: "Print the launchd variant",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.client.Variant(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the launchd version",
	Long:  `Print launchd's version banner. Use --version for the version of this tool.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		if !versionShort {
			return s.client.Version(cmd.Context())
		}

		banner, err := s.client.VersionString(cmd.Context())
		if err != nil {
			return err
		}
		v, err := launchctl.ParseVersion(banner)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}
