// Package cmd implements the webide command-line interface.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/BlockstreamResearch/simplicity-webide/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "webide",
	Short: "Terminal IDE for Simplicity programs",
	Long: `webide hosts a syntax-aware program editor in the terminal. Program
text is mirrored into a host form field for non-editor-aware consumers,
and Ctrl+Enter requests a run of the current program.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/webide/config.yaml)")
	bindFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

// bindFlag mirrors a command-line flag into a viper key so flag values
// override file and environment configuration.
func bindFlag(key string, f *pflag.Flag) {
	_ = viper.BindPFlag(key, f)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/webide")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("WEBIDE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., WEBIDE_EDITOR_THEME for editor.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
