package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vimcore/vimcore/internal/config"
	"github.com/vimcore/vimcore/internal/log"
	"github.com/vimcore/vimcore/internal/paths"
	"github.com/vimcore/vimcore/internal/ui/editor"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "vimcore [file]",
	Short:   "A modal text editing playground",
	Long:    `A terminal playground for vimcore, a modal text editing engine with vim-style motions, text objects, visual selections, and multiple carets.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runEditor,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/vimcore/config.yaml)")
	rootCmd.Flags().Int("wrap", 0,
		"soft wrap width in cells (0 disables wrapping)")
	rootCmd.Flags().Bool("debug", false,
		"log engine activity to the debug log file")

	// Bind flags to viper
	_ = viper.BindPFlag("wrap_width", rootCmd.Flags().Lookup("wrap"))
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("wrap_width", defaults.WrapWidth)
	viper.SetDefault("ui.show_line_numbers", defaults.UI.ShowLineNumbers)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("theme.selection_bg", defaults.Theme.SelectionBg)
	viper.SetDefault("theme.selection_fg", defaults.Theme.SelectionFg)
	viper.SetDefault("theme.status_bg", defaults.Theme.StatusBg)
	viper.SetDefault("theme.status_fg", defaults.Theme.StatusFg)
	viper.SetDefault("theme.mode_bg", defaults.Theme.ModeBg)
	viper.SetDefault("theme.mode_fg", defaults.Theme.ModeFg)
	viper.SetDefault("theme.line_nr", defaults.Theme.LineNr)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("log_file", defaults.LogFile)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .vimcore/config.yaml (current directory)
		// 2. ~/.config/vimcore/config.yaml (user config)
		viper.SetConfigFile(paths.ConfigFile())
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if notFound || os.IsNotExist(err) {
			// First run: seed the user config with defaults. A failed
			// write just means running on defaults, never fatal.
			if cfgFile == "" {
				_ = config.WriteDefaultIfMissing(paths.ConfigFile())
				_ = viper.ReadInConfig()
			}
		} else {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runEditor(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug || log.Enabled() {
		closeLog, err := log.Init(paths.LogFile(cfg.LogFile), "vimcore")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer closeLog()
		log.Info(log.CatConfig, "config file: %s", viper.ConfigFileUsed())
	}

	var text string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		text = string(data)
		cfg.File = args[0]
	}

	model := editor.New(text)
	model.ApplyConfig(cfg)

	p := tea.NewProgram(appModel{editor: model}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
