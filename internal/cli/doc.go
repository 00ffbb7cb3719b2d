// Package cli defines the Cobra command tree for ldctl. Each file registers
// a group of commands with the root command. Agent-scoped commands resolve
// their argument through the agent package and delegate to the launchctl
// client; this package only handles flags, I/O, and exit codes.
package cli
