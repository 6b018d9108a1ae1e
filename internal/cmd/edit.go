package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/BlockstreamResearch/simplicity-webide/internal/config"
	"github.com/BlockstreamResearch/simplicity-webide/internal/event"
	"github.com/BlockstreamResearch/simplicity-webide/internal/logging"
	"github.com/BlockstreamResearch/simplicity-webide/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open the program editor",
	Long: `Opens the terminal editor, optionally seeded with the contents of a
program file. Ctrl+Enter runs the current program; Tab and Shift+Tab
adjust indentation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().String("theme", "", "theme name (overrides editor.theme)")
	bindFlag("editor.theme", editCmd.Flags().Lookup("theme"))

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Close()

	var initial string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading program file: %w", err)
		}
		initial = string(data)
	}

	bus := event.NewBus()
	config.Watch(bus)

	m, err := tui.New(cfg, bus, logger, initial)
	if err != nil {
		return fmt.Errorf("starting editor: %w", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}
