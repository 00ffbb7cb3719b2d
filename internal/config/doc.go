// Package config manages user-level settings stored at ~/.ldctl/config.yaml.
// Values can be overridden with LDCTL_* environment variables; the editor and
// pager additionally fall back to $EDITOR and $PAGER.
package config
