package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/BlockstreamResearch/simplicity-webide/internal/config"
	"github.com/BlockstreamResearch/simplicity-webide/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(themesCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	cmd.Print(string(out))
	return nil
}

func runThemes(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	for _, name := range styles.ListThemes(cfg.Paths.ThemeDir) {
		cmd.Println(name)
	}
	return nil
}
