// Package config provides configuration types and defaults for vimcore.
package config

import "fmt"

// Config holds all configuration options for the editor playground.
type Config struct {
	// File is the file loaded into the buffer on startup (optional).
	File string `mapstructure:"file" yaml:"file"`

	// WrapWidth soft-wraps buffer lines at this many display cells.
	// Zero disables wrapping.
	WrapWidth int `mapstructure:"wrap_width" yaml:"wrap_width"`

	UI    UIConfig    `mapstructure:"ui" yaml:"ui"`
	Theme ThemeConfig `mapstructure:"theme" yaml:"theme"`

	// Debug enables file logging.
	Debug bool `mapstructure:"debug" yaml:"debug"`

	// LogFile is where debug logs go when Debug is set.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers" yaml:"show_line_numbers"`
	ShowStatusBar   bool `mapstructure:"show_status_bar" yaml:"show_status_bar"`
}

// ThemeConfig holds color overrides, as ANSI 256 codes or hex strings
// understood by lipgloss.
type ThemeConfig struct {
	SelectionBg string `mapstructure:"selection_bg" yaml:"selection_bg"`
	SelectionFg string `mapstructure:"selection_fg" yaml:"selection_fg"`
	StatusBg    string `mapstructure:"status_bg" yaml:"status_bg"`
	StatusFg    string `mapstructure:"status_fg" yaml:"status_fg"`
	ModeBg      string `mapstructure:"mode_bg" yaml:"mode_bg"`
	ModeFg      string `mapstructure:"mode_fg" yaml:"mode_fg"`
	LineNr      string `mapstructure:"line_nr" yaml:"line_nr"`
}

// Defaults returns the stock configuration.
func Defaults() Config {
	return Config{
		WrapWidth: 0,
		UI: UIConfig{
			ShowLineNumbers: true,
			ShowStatusBar:   true,
		},
		Theme: ThemeConfig{
			SelectionBg: "57",
			SelectionFg: "255",
			StatusBg:    "236",
			StatusFg:    "252",
			ModeBg:      "62",
			ModeFg:      "230",
			LineNr:      "240",
		},
		LogFile: "vimcore.log",
	}
}

// Validate checks the configuration for values the editor cannot run with.
func (c Config) Validate() error {
	if c.WrapWidth < 0 {
		return fmt.Errorf("wrap_width must not be negative, got %d", c.WrapWidth)
	}
	if c.Debug && c.LogFile == "" {
		return fmt.Errorf("log_file is required when debug is enabled")
	}
	return nil
}
