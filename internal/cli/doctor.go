package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/ldctl/ldctl/internal/agent"
	"github.com/ldctl/ldctl/internal/config"
	"github.com/ldctl/ldctl/internal/launchctl"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the ldctl environment",
	Long:  `Verify that launchctl is available, the agents directory exists, and the config file is valid.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		failures := 0

		fmt.Fprintln(w, "launchctl:")
		if path, err := exec.LookPath(s.settings.Launchctl); err != nil {
			fmt.Fprintf(w, "  [FAIL] %s not found on PATH\n", s.settings.Launchctl)
			failures++
		} else {
			fmt.Fprintf(w, "  [ OK ] %s\n", path)
			checkLaunchdVersion(cmd, w, s.client)
		}

		fmt.Fprintln(w, "Agents directory:")
		if !checkAgentsDir(w, s.settings) {
			failures++
		}

		fmt.Fprintln(w, "Config:")
		if !checkConfigFile(w, config.FilePath()) {
			failures++
		}

		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		return nil
	},
}

func checkLaunchdVersion(cmd *cobra.Command, w io.Writer, client *launchctl.Client) {
	banner, err := client.VersionString(cmd.Context())
	if err != nil {
		fmt.Fprintf(w, "  [WARN] cannot query launchd version: %v\n", err)
		return
	}
	v, err := launchctl.ParseVersion(banner)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] launchd %s\n", v)
}

func checkAgentsDir(w io.Writer, settings *config.Settings) bool {
	info, err := os.Stat(settings.AgentsDir)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", settings.AgentsDir, err)
		return false
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s is not a directory\n", settings.AgentsDir)
		return false
	}

	known, err := agent.LoadCollection(settings.AgentsDir, settings.Extension)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s (%d .%s files)\n", settings.AgentsDir, known.Len(), settings.Extension)
	return true
}

func checkConfigFile(w io.Writer, path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [INFO] %s not present, using defaults\n", path)
		return true
	}
	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	if !result.Valid {
		fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		printIssues(w, result.Issues)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s is valid\n", path)
	return true
}

func printIssues(w io.Writer, issues []config.ValidationIssue) {
	for _, issue := range issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s\n", issue.Message)
		}
	}
}
