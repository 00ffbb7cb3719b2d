// Package launchctl drives the launchd control utility. It builds the
// argument lists for each supported subcommand, decides which failures are
// fatal, and post-processes the plain-text output of print-disabled, print
// and list. That output is not a stable interface; the filters here are
// substring and field heuristics.
package launchctl
