// Package config holds the web IDE configuration, loaded through viper from
// a YAML file, environment variables and flags.
package config

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/BlockstreamResearch/simplicity-webide/internal/event"
)

// Config represents the complete web IDE configuration
type Config struct {
	Editor  EditorConfig  `mapstructure:"editor" yaml:"editor"`
	Runner  RunnerConfig  `mapstructure:"runner" yaml:"runner"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Paths   PathsConfig   `mapstructure:"paths" yaml:"paths"`
}

// EditorConfig controls the text-editing widget the bridge constructs
type EditorConfig struct {
	// Theme is the visual theme name (default: "default"); custom themes
	// are YAML files in the theme directory
	Theme string `mapstructure:"theme" yaml:"theme"`
	// SyntaxMode names the language mode for highlighting
	SyntaxMode string `mapstructure:"syntax_mode" yaml:"syntax_mode"`
	// TabWidth is the number of columns one indent step occupies
	TabWidth int `mapstructure:"tab_width" yaml:"tab_width"`
	// IndentWithTabs selects tab characters over spaces
	IndentWithTabs bool `mapstructure:"indent_with_tabs" yaml:"indent_with_tabs"`
	// LineNumbers enables the line-number gutter
	LineNumbers bool `mapstructure:"line_numbers" yaml:"line_numbers"`
	// MatchBrackets enables matching-bracket highlighting
	MatchBrackets bool `mapstructure:"match_brackets" yaml:"match_brackets"`
	// AutoCloseBrackets inserts closing brackets automatically
	AutoCloseBrackets bool `mapstructure:"auto_close_brackets" yaml:"auto_close_brackets"`
	// LineWrapping enables soft wrapping of long lines
	LineWrapping bool `mapstructure:"line_wrapping" yaml:"line_wrapping"`
}

// RunnerConfig controls program runs
type RunnerConfig struct {
	// TimeoutMs is the per-run timeout in milliseconds (0 = no timeout)
	TimeoutMs int `mapstructure:"timeout_ms" yaml:"timeout_ms"`
	// FlashMs is how long the run success/failure indicator stays visible
	FlashMs int `mapstructure:"flash_ms" yaml:"flash_ms"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Level is the minimum level written (DEBUG, INFO, WARN, ERROR)
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the log directory; empty logs to stderr
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// PathsConfig controls where user files live
type PathsConfig struct {
	// ThemeDir is the directory searched for custom theme YAML files
	ThemeDir string `mapstructure:"theme_dir" yaml:"theme_dir"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			Theme:             "default",
			SyntaxMode:        "simplicity",
			TabWidth:          4,
			IndentWithTabs:    false,
			LineNumbers:       true,
			MatchBrackets:     true,
			AutoCloseBrackets: true,
			LineWrapping:      false,
		},
		Runner: RunnerConfig{
			TimeoutMs: 5000,
			FlashMs:   500,
		},
		Logging: LoggingConfig{
			Level: "INFO",
			Dir:   "",
		},
		Paths: PathsConfig{
			ThemeDir: filepath.Join(ConfigDir(), "themes"),
		},
	}
}

// SetDefaults registers all defaults with viper so they apply even without
// a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("editor.theme", defaults.Editor.Theme)
	viper.SetDefault("editor.syntax_mode", defaults.Editor.SyntaxMode)
	viper.SetDefault("editor.tab_width", defaults.Editor.TabWidth)
	viper.SetDefault("editor.indent_with_tabs", defaults.Editor.IndentWithTabs)
	viper.SetDefault("editor.line_numbers", defaults.Editor.LineNumbers)
	viper.SetDefault("editor.match_brackets", defaults.Editor.MatchBrackets)
	viper.SetDefault("editor.auto_close_brackets", defaults.Editor.AutoCloseBrackets)
	viper.SetDefault("editor.line_wrapping", defaults.Editor.LineWrapping)

	viper.SetDefault("runner.timeout_ms", defaults.Runner.TimeoutMs)
	viper.SetDefault("runner.flash_ms", defaults.Runner.FlashMs)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)

	viper.SetDefault("paths.theme_dir", defaults.Paths.ThemeDir)
}

// Load unmarshals the effective viper configuration and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if
// unmarshaling fails.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".webide"
	}
	return filepath.Join(home, ".config", "webide")
}

// ConfigFile returns the path of the primary config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Watch re-reads the config when the file changes on disk and publishes a
// config.reloaded event. It uses viper's fsnotify-backed watcher and
// returns immediately.
func Watch(bus *event.Bus) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		bus.Publish(event.NewConfigReloadedEvent(e.Name))
	})
	viper.WatchConfig()
}
