package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbranch/foreman/internal/mockapi"
	"github.com/tbranch/foreman/internal/workorder"
)

const shutdownTimeout = 5 * time.Second

var (
	flagAddr    string
	flagSeedN   int
	flagLatency time.Duration
)

// mockAPICmd runs the demo work-order API the console talks to. Useful
// for trying the live path without a real backend.
var mockAPICmd = &cobra.Command{
	Use:   "mock-api",
	Short: "Run a local work-order API with generated data",
	RunE:  runMockAPI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("foreman %s (%s, %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(mockAPICmd, versionCmd)

	mockAPICmd.Flags().StringVar(&flagAddr, "addr", "127.0.0.1:8432", "listen address")
	mockAPICmd.Flags().IntVar(&flagSeedN, "records", 25000, "number of records to generate")
	mockAPICmd.Flags().DurationVar(&flagLatency, "latency", 0, "artificial response latency")
}

func runMockAPI(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	orders := workorder.Generate(flagSeedN)
	srv := mockapi.New(orders, flagLatency, logger)

	httpSrv := &http.Server{
		Addr:    flagAddr,
		Handler: srv.Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("mock api listening", "addr", flagAddr, "records", len(orders))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("mock api: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("mock api stopped")
	return nil
}
