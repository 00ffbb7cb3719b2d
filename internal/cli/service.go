package cli

import (
	"context"

	"github.com/ldctl/ldctl/internal/agent"
	"github.com/ldctl/ldctl/internal/launchctl"
	"github.com/spf13/cobra"
)

// serviceOps are the agent-scoped launchctl passthroughs.
var serviceOps = []struct {
	name  string
	short string
	run   func(c *launchctl.Client, ctx context.Context, d agent.Descriptor) error
}{
	{"blame", "Show why launchd started the agent", (*launchctl.Client).Blame},
	{"bootout", "Unload the agent from the GUI domain", (*launchctl.Client).Bootout},
	{"bootstrap", "Load the agent into the GUI domain", (*launchctl.Client).Bootstrap},
	{"disable", "Disable the agent", (*launchctl.Client).Disable},
	{"enable", "Enable the agent", (*launchctl.Client).Enable},
	{"kickstart", "Start the agent", (*launchctl.Client).Kickstart},
	{"kill", "Send SIGTERM to the agent", (*launchctl.Client).Kill},
	{"print", "Print launchd's view of the agent", (*launchctl.Client).Print},
}

func init() {
	for _, op := range serviceOps {
		run := op.run
		rootCmd.AddCommand(&cobra.Command{
			Use:   op.name + " <agent>",
			Short: op.short,
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
				return run(s.client, cmd.Context(), d)
			},
		})
	}
}
