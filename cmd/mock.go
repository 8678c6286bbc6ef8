package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ethanolivertroy/riskboard/internal/mock"
)

var (
	flagListen string
	flagCount  int
)

// mockCmd runs a local risks backend so the dashboard can be tried without
// a real findings service.
var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Run a local demo risks backend",
	Long: `mock serves GET /api/v1/tables/risks with generated findings until
interrupted.

Examples:
  # Serve on the default address
  riskboard mock

  # Larger table on another port
  riskboard mock --listen 127.0.0.1:8080 --count 200`,
	RunE: runMock,
}

func init() {
	mockCmd.Flags().StringVar(&flagListen, "listen", "127.0.0.1:5649", "Listen address")
	mockCmd.Flags().IntVar(&flagCount, "count", 20, "Number of generated findings beyond the base set")
	rootCmd.AddCommand(mockCmd)
}

func runMock(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return mock.NewServer(flagListen, flagCount).Serve(ctx)
}
