package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/TFMV/forcegraph/tui"
)

var tuiData string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Explore the graph interactively in the terminal",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiData, "data", "", "path to graph JSON file")
	tuiCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	g, err := loadGraph(tuiData)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.New(g, settings))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}
