package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ldctl/ldctl/internal/branding"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyAgentsDir = "agents_dir"
	KeyExtension = "extension"
	KeyLaunchctl = "launchctl"
	KeyEditor    = "editor"
	KeyPager     = "pager"
	KeyTailLines = "tail_lines"
	KeyLogLevel  = "log_level"
)

// Keys lists every recognized setting in display order.
var Keys = []string{KeyAgentsDir, KeyExtension, KeyLaunchctl, KeyEditor, KeyPager, KeyTailLines, KeyLogLevel}

// Fallbacks used when neither the config file nor the environment sets a value.
const (
	DefaultEditor    = "vim"
	DefaultPager     = "less"
	DefaultTailLines = 50
	DefaultLogLevel  = "warn"
)

// Settings is the resolved configuration for one invocation.
type Settings struct {
	AgentsDir string
	Extension string
	Launchctl string
	Editor    string
	Pager     string
	TailLines int
	LogLevel  string
}

// Dir returns the path to the config directory (~/.ldctl/).
// LDCTL_HOME overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.ldctl/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// DefaultAgentsDir returns ~/Library/LaunchAgents.
func DefaultAgentsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("Library", "LaunchAgents")
	}
	return filepath.Join(home, "Library", "LaunchAgents")
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyAgentsDir, DefaultAgentsDir())
	viper.SetDefault(KeyExtension, "plist")
	viper.SetDefault(KeyLaunchctl, "launchctl")
	viper.SetDefault(KeyTailLines, DefaultTailLines)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Resolve returns the effective settings. Load must have been called.
func Resolve() (*Settings, error) {
	s := &Settings{
		AgentsDir: viper.GetString(KeyAgentsDir),
		Extension: viper.GetString(KeyExtension),
		Launchctl: viper.GetString(KeyLaunchctl),
		Editor:    firstNonEmpty(viper.GetString(KeyEditor), os.Getenv("EDITOR"), DefaultEditor),
		Pager:     firstNonEmpty(viper.GetString(KeyPager), os.Getenv("PAGER"), DefaultPager),
		TailLines: viper.GetInt(KeyTailLines),
		LogLevel:  viper.GetString(KeyLogLevel),
	}

	if s.AgentsDir == "" {
		s.AgentsDir = DefaultAgentsDir()
	}
	if s.Extension == "" {
		s.Extension = "plist"
	}
	if s.Launchctl == "" {
		s.Launchctl = "launchctl"
	}
	if s.TailLines <= 0 {
		return nil, fmt.Errorf("%s must be a positive number, got %d", KeyTailLines, s.TailLines)
	}
	return s, nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("unknown key %q", key)
	}

	var v any = value
	if key == KeyTailLines {
		n, err := cast.ToIntE(value)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", key, err)
		}
		if n < 1 {
			return fmt.Errorf("%s must be a positive number, got %d", key, n)
		}
		v = n
	}

	if err := EnsureDir(); err != nil {
		return err
	}
	viper.Set(key, v)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func isKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
