// Package main is the fmpmcp entrypoint: an MCP server exposing the Financial
// Modeling Prep API as tools over stdio.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"fmpmcp"
	"fmpmcp/internal/config"
	"fmpmcp/internal/fmp"
	"fmpmcp/internal/mcp"
	"fmpmcp/internal/tools"
)

const version = "0.1.0"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "fmpmcp",
		Short: "MCP server for the Financial Modeling Prep API",
		Long: `fmpmcp exposes Financial Modeling Prep stock, statement, option, analyst,
and crypto data as MCP tools over stdio.

Set FMP_API_KEY before starting; the server refuses to start without it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout (default command)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	rootCmd.AddCommand(serveCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "fmpmcp:", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	client := fmp.New(cfg.BaseURL, cfg.APIKey, cfg.Timeout())
	catalog, err := tools.All(client)
	if err != nil {
		return fmt.Errorf("build tool catalog: %w", err)
	}
	for i, t := range catalog {
		catalog[i] = fmpmcp.Wrap(t, fmpmcp.WithLogging(logger))
	}

	// Dispatch budget covers the HTTP timeout plus marshaling overhead; the
	// composite tools issue two sequential calls, hence the doubling.
	reg := fmpmcp.NewRegistry(
		fmpmcp.WithDefaultTimeout(2*cfg.Timeout()+5*time.Second),
		fmpmcp.WithMaxConcurrency(cfg.MaxConcurrency),
		fmpmcp.WithRecoverPanics(true),
	)
	if err := reg.MustRegister(catalog...); err != nil {
		return fmt.Errorf("register tools: %w", err)
	}
	logger.Info("starting", "version", version, "tools", len(catalog))

	server := mcp.NewServer("fmpmcp", version, reg, logger)
	if err := server.Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := reg.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown timed out", "error", err)
	}
	logger.Info("stopped")
	return nil
}

// newLogger builds the slog handler from config. stderr only: stdout carries
// the protocol.
func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
