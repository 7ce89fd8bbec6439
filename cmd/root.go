// Package cmd wires the layout engine to its hosts: one-shot rendering,
// the HTTP server, and the interactive terminal UI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TFMV/forcegraph/config"
	"github.com/TFMV/forcegraph/models"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "forcegraph",
	Short: "Force-directed layout engine for typed graphs",
	Long: `forcegraph computes continuously updated 2D positions for typed,
weighted graphs via iterative physics simulation: pairwise repulsion,
same-type attraction, center gravity, damping, and equilibrium snap.`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML tuning file")
}

func loadSettings() (config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

func loadGraph(path string) (*models.Graph, error) {
	if path == "" {
		return models.NewGraph(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}
	g, err := models.Load(data)
	if err != nil {
		return nil, err
	}
	return g, nil
}
