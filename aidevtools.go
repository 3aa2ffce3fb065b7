// Package aidevtools exposes the AI developer tools MCP server as an
// embeddable library. It wires the immutable adoption dataset, the metric
// engine, the four query operations, and the MCP tool server, mirroring
// the binary in cmd/aidevtools.
package aidevtools

import (
	"log/slog"
	"time"

	"github.com/grzetich/ai-developer-tools-mcp/internal/config"
	"github.com/grzetich/ai-developer-tools-mcp/internal/dataset"
	"github.com/grzetich/ai-developer-tools-mcp/internal/errortypes"
	"github.com/grzetich/ai-developer-tools-mcp/internal/server"
	"github.com/grzetich/ai-developer-tools-mcp/internal/telemetry"
)

// Config represents the configuration for the AI developer tools service.
type Config = config.Config

// OperationInfo describes one registered operation for discovery.
type OperationInfo = server.OperationInfo

// Server represents the AI developer tools service.
type Server struct {
	config     *config.Config
	data       *dataset.Dataset
	collector  *telemetry.MetricsCollector
	toolServer server.AdoptionToolServer
	logger     *slog.Logger // Logger for this Server instance
}

// ServerOptions defines the options for creating a new Server.
type ServerOptions struct {
	Config     *Config      // Pre-filled config. If nil, ConfigPath is used.
	ConfigPath string       // Path to config file. Used if Config is nil. If both are empty, DefaultConfig() is used.
	Logger     *slog.Logger // External logger. If nil, slog.Default() is used.
}

// NewServer creates a new AI developer tools Server with the given options.
// If opts.Config is provided, it will be used directly.
// Otherwise, if opts.ConfigPath is provided, configuration will be loaded from that path.
// If neither is provided, DefaultConfig() will be used.
// If opts.Logger is nil, slog.Default() will be used.
func NewServer(opts ServerOptions) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var cfg *Config
	var err error

	if opts.Config != nil {
		cfg = opts.Config
		logger.Info("Using provided Config object for server initialization")
	} else if opts.ConfigPath != "" {
		logger.Info("Loading configuration for server initialization", "path", opts.ConfigPath)
		cfg, err = config.LoadConfigWithPath(opts.ConfigPath)
		if err != nil {
			logger.Error("Failed to load configuration from path", "path", opts.ConfigPath, "error", err)
			return nil, errortypes.ConfigError(err, "Failed to load configuration from path: "+opts.ConfigPath)
		}
	} else {
		logger.Warn("No Config object or ConfigPath provided, using default configuration for server initialization")
		cfg = DefaultConfig()
	}

	data, collector := CreateComponents(cfg, logger)

	logger.Info("Initializing adoption tool server component")
	toolServer := server.NewAdoptionToolServer(data, collector, server.Options{
		Name: cfg.Server.Name,
		Latency: server.LatencyOptions{
			Enabled: cfg.Latency.Enabled,
			Min:     time.Duration(cfg.Latency.MinMs) * time.Millisecond,
			Max:     time.Duration(cfg.Latency.MaxMs) * time.Millisecond,
		},
	})
	if err := toolServer.Initialize(); err != nil {
		logger.Error("Failed to initialize MCP adoption tool server component", "error", err)
		return nil, errortypes.ConfigError(err, "Failed to initialize MCP adoption tool server component")
	}

	logger.Info("AI developer tools server successfully initialized")
	return &Server{
		config:     cfg,
		data:       data,
		collector:  collector,
		toolServer: toolServer,
		logger:     logger,
	}, nil
}

// DefaultConfig returns the default configuration for the service.
func DefaultConfig() *Config {
	return config.NewConfig()
}

// CreateComponents builds the dataset and telemetry collector shared by
// the tool server.
func CreateComponents(cfg *Config, logger *slog.Logger) (*dataset.Dataset, *telemetry.MetricsCollector) {
	if logger == nil {
		logger = slog.Default()
	}

	data := dataset.Default()
	logger.Info("Adoption dataset loaded", "tool_count", data.Len())

	collector := telemetry.NewMetricsCollector()
	return data, collector
}

// Start starts the MCP server on the stdio transport. It blocks until the
// transport closes.
func (s *Server) Start() error {
	s.logger.Info("Starting AI developer tools server", "name", s.config.Server.Name)
	return s.toolServer.Start()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	return s.toolServer.Stop()
}

// Invoke dispatches one named operation with raw arguments without going
// through a transport. It returns rendered text, or a structured failure
// that never panics through to the caller.
func (s *Server) Invoke(name string, args map[string]any) (string, error) {
	return s.toolServer.Invoke(name, args)
}

// Operations lists the registered operations for discovery.
func (s *Server) Operations() []OperationInfo {
	return s.toolServer.Operations()
}

// Metrics exposes the telemetry collector for monitoring.
func (s *Server) Metrics() *telemetry.MetricsCollector {
	return s.collector
}
