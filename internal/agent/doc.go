// Package agent locates launchd agent descriptors on disk. It maps short,
// fuzzy name fragments to exactly one descriptor file, narrowing ambiguous
// matches by dot-delimited segment and finally by asking the user.
package agent
