// Package runner is the process boundary of the CLI. Every external
// program (launchctl, the editor, the pager, tail) is started through the
// Runner interface so that callers can be tested against fixture output.
package runner
