package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/joshuapare/partsim/internal/logger"
	"github.com/joshuapare/partsim/internal/session"
)

func init() {
	rootCmd.AddCommand(newTUICmd())
}

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Full-screen interactive simulator",
		Long: `The tui command opens a full-screen view of the partition table with a
command line underneath. Commands are the same as in scripts.

Keys:
  enter    run the command line
  ctrl+y   copy the partition report to the clipboard
  esc      quit

Example:
  partsim tui --partitions 64,128,256,512`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
	return cmd
}

func runTUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newAllocator(cfg)
	if err != nil {
		return err
	}

	m := newTUIModel(session.New(a, session.WithLogger(logger.L)), !noColor)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stdout))

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
