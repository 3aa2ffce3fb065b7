package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grzetich/ai-developer-tools-mcp/internal/config"
	"github.com/grzetich/ai-developer-tools-mcp/internal/dataset"
	"github.com/grzetich/ai-developer-tools-mcp/internal/errortypes"
	"github.com/grzetich/ai-developer-tools-mcp/internal/server"
	"github.com/grzetich/ai-developer-tools-mcp/internal/telemetry"
)

func main() {
	// Initialize logging first thing. Logs go to stderr: stdout carries
	// the MCP stdio transport.
	appLogger := setupLogging()

	appLogger.Info("AI Developer Tools MCP Server - Starting...")

	// Load configuration
	cfg, err := config.InitGlobal(config.DefaultConfigFilename)
	if err != nil {
		errortypes.LogError(appLogger, errortypes.ConfigError(err, "Failed to load configuration"))
		os.Exit(1)
	}

	// Reconfigure logging based on config
	appLogger = configureLogging(cfg)
	slog.SetDefault(appLogger)
	appLogger.Info("Logging configured", "level", cfg.Logging.Level, "format", cfg.Logging.Format)

	// Load the adoption dataset
	data := dataset.Default()
	appLogger.Info("Adoption dataset loaded", "tool_count", data.Len())

	// Create the telemetry collector
	collector := telemetry.NewMetricsCollector()

	// Initialize the MCP server
	srv := server.NewAdoptionToolServer(data, collector, server.Options{
		Name: cfg.Server.Name,
		Latency: server.LatencyOptions{
			Enabled: cfg.Latency.Enabled,
			Min:     time.Duration(cfg.Latency.MinMs) * time.Millisecond,
			Max:     time.Duration(cfg.Latency.MaxMs) * time.Millisecond,
		},
	})
	if err := srv.Initialize(); err != nil {
		errortypes.LogError(appLogger, errortypes.ConfigError(err, "Failed to initialize MCP server"))
		os.Exit(1)
	}
	appLogger.Info("MCP server initialized")

	// Handle graceful shutdown
	setupSignalHandler(srv, collector, appLogger)

	// Start the MCP server (this will block until server is terminated)
	appLogger.Info("Starting MCP server...")
	if err := srv.Start(); err != nil {
		errortypes.LogError(appLogger, errortypes.InternalError(err, "MCP server failed"))
		os.Exit(1)
	}
}

// setupLogging configures and returns the application logger
func setupLogging() *slog.Logger {
	level := slog.LevelInfo
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		level = parseLevel(levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// configureLogging builds a logger matching the loaded configuration
func configureLogging(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Logging.Level)}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// parseLevel maps a configured level name onto a slog level
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupSignalHandler sets up a signal handler for graceful shutdown.
func setupSignalHandler(srv server.AdoptionToolServer, collector *telemetry.MetricsCollector, log *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Received shutdown signal, terminating gracefully...")

		if err := srv.Stop(); err != nil {
			errortypes.LogError(log, errortypes.InternalError(err, "Error stopping server during shutdown"))
		}

		log.Info("Final metrics", "report", collector.GetReport())
		log.Info("Shutdown complete")
		os.Exit(0)
	}()
}
