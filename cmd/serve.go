package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TFMV/forcegraph/server"
)

var (
	servePort int
	serveData string
	serveTick time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the engine behind a JSON HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "listen port")
	serveCmd.Flags().StringVar(&serveData, "data", "", "initial graph JSON file")
	serveCmd.Flags().DurationVar(&serveTick, "tick", 50*time.Millisecond, "simulation tick interval")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	g, err := loadGraph(serveData)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := server.New(settings, logger)
	if len(g.Nodes) > 0 {
		srv.SetGraph(g)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	color.Cyan("listening on :%d (tick %s)", servePort, serveTick)
	return srv.Start(ctx, servePort, serveTick)
}
