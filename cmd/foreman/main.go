// Package main is the entry point for the foreman console.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbranch/foreman/internal/app"
)

// set at build time via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagAPI      string
	flagRecords  int
	flagTimeout  time.Duration
	flagMockOnly bool
)

var rootCmd = &cobra.Command{
	Use:   "foreman",
	Short: "A terminal console for browsing work orders",
	Long: `foreman is a terminal console for browsing, searching, and filtering
work orders. It loads records from the foreman API and falls back to a
locally generated data set when the API is unreachable.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return app.Run(ctx, app.Options{
			ConfigPath: flagConfig,
			APIBase:    flagAPI,
			Records:    flagRecords,
			Timeout:    flagTimeout,
			MockOnly:   flagMockOnly,
		})
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to config file")
	rootCmd.Flags().StringVar(&flagAPI, "api", "", "API address, host:port")
	rootCmd.Flags().IntVar(&flagRecords, "records", 0, "number of records to load")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "API fetch timeout")
	rootCmd.Flags().BoolVar(&flagMockOnly, "mock", false, "skip the API and use generated data")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
