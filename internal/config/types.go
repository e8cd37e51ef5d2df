package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Section names accepted by ui.default_section.
const (
	SectionOverview = "overview"
	SectionMembers  = "members"
	SectionSettings = "settings"
)

// Config represents the full tskpay configuration document.
type Config struct {
	UI          UISettings         `yaml:"ui"`
	Preferences PreferenceSettings `yaml:"preferences"`
	Data        DataSettings       `yaml:"data"`
	Log         LogSettings        `yaml:"log"`
}

// UISettings tunes the dashboard.
type UISettings struct {
	UserName          string `yaml:"user_name" validate:"max=60"`
	DefaultSection    string `yaml:"default_section" validate:"required,oneof=overview members settings"`
	SidebarBreakpoint int    `yaml:"sidebar_breakpoint" validate:"min=0,max=400"`
}

// PreferenceSettings selects where the theme preference is persisted.
type PreferenceSettings struct {
	Backend string `yaml:"backend" validate:"required,oneof=memory file sqlite"`
	Path    string `yaml:"path" validate:"required_unless=Backend memory"`
	Key     string `yaml:"key" validate:"required,pref_key"`
}

// DataSettings points at an optional dataset file.
type DataSettings struct {
	Path string `yaml:"path"`
}

// LogSettings configures the log file the dashboard writes to.
type LogSettings struct {
	Level string `yaml:"level" validate:"required,oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file exists. Fields a file
// leaves out keep these values.
func Default() *Config {
	return &Config{
		UI: UISettings{
			DefaultSection:    SectionOverview,
			SidebarBreakpoint: 100,
		},
		Preferences: PreferenceSettings{
			Backend: "file",
			Path:    "~/.config/tskpay/preferences.json",
			Key:     "tskpay-theme",
		},
		Log: LogSettings{
			Level: "info",
			File:  "~/.local/state/tskpay/tskpay.log",
		},
	}
}

// DefaultPath is the configuration file looked up when --config is not given.
func DefaultPath() string {
	return ExpandPath("~/.config/tskpay/config.yaml")
}

// ExpandPath replaces a leading "~/" with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// PreferencesPath returns the expanded preference store path.
func (c *Config) PreferencesPath() string {
	return ExpandPath(c.Preferences.Path)
}

// LogFile returns the expanded log file path, or "" when logging to a file
// is disabled.
func (c *Config) LogFile() string {
	return ExpandPath(c.Log.File)
}

// DataPath returns the expanded dataset path, or "" for the built-in sample.
func (c *Config) DataPath() string {
	return ExpandPath(c.Data.Path)
}
