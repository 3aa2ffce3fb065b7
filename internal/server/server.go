package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/localrivet/gomcp/server"

	"github.com/grzetich/ai-developer-tools-mcp/internal/dataset"
	"github.com/grzetich/ai-developer-tools-mcp/internal/errortypes"
	"github.com/grzetich/ai-developer-tools-mcp/internal/ops"
	"github.com/grzetich/ai-developer-tools-mcp/internal/render"
	"github.com/grzetich/ai-developer-tools-mcp/internal/telemetry"
	"github.com/grzetich/ai-developer-tools-mcp/internal/tools"
)

// Common server error types
var (
	ErrServerNotInitialized = errors.New("server not initialized")
	ErrMissingDependencies  = errors.New("one or more required dependencies are nil")
)

// Tool descriptions announced for discovery.
const (
	descCompareTools     = "Compare adoption metrics for two or three AI developer tools"
	descGetTrendingTools = "List AI developer tools ranked by download growth"
	descGetToolHistory   = "Show the monthly download history of one AI developer tool"
	descSearchTools      = "Search AI developer tools by category, downloads, and keyword"
)

// LatencyOptions configures the simulated network delay applied before
// each call. The delay emulates a remote metrics API and carries no
// correctness weight; it is disabled by default.
type LatencyOptions struct {
	Enabled bool
	Min     time.Duration
	Max     time.Duration
}

// Options configures an MCPAdoptionToolServer.
type Options struct {
	// Name is the server name announced on the transport.
	Name string

	// Latency is the simulated per-call delay.
	Latency LatencyOptions
}

// OperationInfo describes one registered operation for discovery.
type OperationInfo struct {
	Name        string
	Description string
}

// invoker dispatches raw arguments for one operation.
type invoker struct {
	description string
	call        func(args map[string]any) (string, error)
}

// MCPAdoptionToolServer implements the AdoptionToolServer interface for
// handling MCP tool calls over the adoption-metrics dataset. Each call
// runs inside a failure boundary: a failure in one call never escapes the
// dispatcher and never affects its ability to serve the next call.
type MCPAdoptionToolServer struct {
	runner    *ops.Runner
	collector *telemetry.MetricsCollector
	opts      Options
	mcpServer server.Server

	invokers map[string]invoker
	names    []string
}

// NewAdoptionToolServer creates a new MCPAdoptionToolServer instance.
func NewAdoptionToolServer(data *dataset.Dataset, collector *telemetry.MetricsCollector, opts Options) *MCPAdoptionToolServer {
	var runner *ops.Runner
	if data != nil {
		runner = ops.NewRunner(data)
	}
	if opts.Name == "" {
		opts.Name = "ai-dev-tools"
	}
	return &MCPAdoptionToolServer{
		runner:    runner,
		collector: collector,
		opts:      opts,
	}
}

// Initialize initializes the server with dependencies and configurations.
func (s *MCPAdoptionToolServer) Initialize() error {
	slog.Info("Initializing MCP Adoption Tool Server", "name", s.opts.Name)

	if s.runner == nil || s.collector == nil {
		return errortypes.ConfigError(ErrMissingDependencies, "server initialization failed")
	}

	// Create the MCP server
	srv := server.NewServer(s.opts.Name)

	// Register compare_tools tool
	srv = srv.Tool(tools.ToolCompareTools, descCompareTools,
		s.handleCompareTools)

	// Register get_trending_tools tool
	srv = srv.Tool(tools.ToolGetTrendingTools, descGetTrendingTools,
		s.handleGetTrendingTools)

	// Register get_tool_history tool
	srv = srv.Tool(tools.ToolGetToolHistory, descGetToolHistory,
		s.handleGetToolHistory)

	// Register search_tools tool
	srv = srv.Tool(tools.ToolSearchTools, descSearchTools,
		s.handleSearchTools)

	s.mcpServer = srv

	// The same four operations are reachable without a transport through
	// Invoke; both entries share one pipeline.
	s.names = []string{
		tools.ToolCompareTools,
		tools.ToolGetTrendingTools,
		tools.ToolGetToolHistory,
		tools.ToolSearchTools,
	}
	s.invokers = map[string]invoker{
		tools.ToolCompareTools: {
			description: descCompareTools,
			call: func(args map[string]any) (string, error) {
				return s.dispatch(tools.ToolCompareTools, func() (string, error) {
					req, err := decodeArgs[tools.CompareToolsRequest](args)
					if err != nil {
						return "", err
					}
					return s.runCompare(req)
				})
			},
		},
		tools.ToolGetTrendingTools: {
			description: descGetTrendingTools,
			call: func(args map[string]any) (string, error) {
				return s.dispatch(tools.ToolGetTrendingTools, func() (string, error) {
					req, err := decodeArgs[tools.GetTrendingToolsRequest](args)
					if err != nil {
						return "", err
					}
					return s.runTrending(req)
				})
			},
		},
		tools.ToolGetToolHistory: {
			description: descGetToolHistory,
			call: func(args map[string]any) (string, error) {
				return s.dispatch(tools.ToolGetToolHistory, func() (string, error) {
					req, err := decodeArgs[tools.GetToolHistoryRequest](args)
					if err != nil {
						return "", err
					}
					return s.runHistory(req)
				})
			},
		},
		tools.ToolSearchTools: {
			description: descSearchTools,
			call: func(args map[string]any) (string, error) {
				return s.dispatch(tools.ToolSearchTools, func() (string, error) {
					req, err := decodeArgs[tools.SearchToolsRequest](args)
					if err != nil {
						return "", err
					}
					return s.runSearch(req)
				})
			},
		},
	}

	slog.Info("MCP Adoption Tool Server initialized successfully", "tool_count", len(s.names))
	return nil
}

// Start starts the MCP server on the specified transport.
func (s *MCPAdoptionToolServer) Start() error {
	if s.mcpServer == nil {
		return errortypes.ConfigError(ErrServerNotInitialized, "cannot start server")
	}

	slog.Info("Starting MCP Adoption Tool Server")

	// Start the server using stdio transport
	stdioServer := s.mcpServer.AsStdio()
	return stdioServer.Run()
}

// Stop gracefully shuts down the MCP server.
func (s *MCPAdoptionToolServer) Stop() error {
	slog.Info("Stopping MCP Adoption Tool Server")
	// The server will exit when stdin is closed
	return nil
}

// Operations lists the registered operations in registration order.
func (s *MCPAdoptionToolServer) Operations() []OperationInfo {
	infos := make([]OperationInfo, 0, len(s.names))
	for _, name := range s.names {
		infos = append(infos, OperationInfo{Name: name, Description: s.invokers[name].description})
	}
	return infos
}

// Invoke dispatches one named operation with raw arguments. A name with
// no registered operation fails with an unknown-operation result before
// anything executes.
func (s *MCPAdoptionToolServer) Invoke(name string, args map[string]any) (string, error) {
	inv, ok := s.invokers[name]
	if !ok {
		s.collector.IncrementCounter(telemetry.MetricCallsUnknownOperation, 1)
		err := errortypes.UnknownOperationError(
			fmt.Errorf("no operation registered under %q", name), "unknown operation")
		errortypes.LogError(nil, err)
		return "", failureResult(err)
	}
	return inv.call(args)
}

// dispatch runs one operation inside the failure boundary: the simulated
// latency gate, telemetry accounting, and a recover that converts panics
// raised anywhere below into structured internal errors. No failure
// propagates past this function unconverted.
func (s *MCPAdoptionToolServer) dispatch(name string, exec func() (string, error)) (text string, err error) {
	start := time.Now()
	s.collector.IncrementCounter(telemetry.CallCounterName(name), 1)
	s.collector.RecordTimestamp(telemetry.MetricLastCall)
	s.simulateLatency()

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errortypes.InternalError(fmt.Errorf("%v", r), "operation panicked").
				WithField("operation", name)
		}

		s.collector.RecordTimer(telemetry.ResponseTimerName(name), time.Since(start))

		if err != nil {
			s.collector.IncrementCounter(telemetry.MetricCallsFailure, 1)
			errortypes.LogError(nil, err)
			text = ""
			err = failureResult(err)
			return
		}
		s.collector.IncrementCounter(telemetry.MetricCallsSuccess, 1)
	}()

	text, err = exec()
	return
}

// simulateLatency sleeps for a random duration inside the configured
// bounds when latency simulation is enabled.
func (s *MCPAdoptionToolServer) simulateLatency() {
	if !s.opts.Latency.Enabled {
		return
	}

	min, max := s.opts.Latency.Min, s.opts.Latency.Max
	if max < min {
		max = min
	}
	delay := min
	if max > min {
		delay = min + time.Duration(rand.Int63n(int64(max-min)))
	}
	time.Sleep(delay)
}

// decodeArgs parses raw arguments into the operation's typed request.
func decodeArgs[T any](args map[string]any) (T, error) {
	var req T
	raw, err := json.Marshal(args)
	if err != nil {
		return req, errortypes.ValidationError(err, "arguments are not encodable")
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, errortypes.ValidationError(err, "arguments do not match the input schema")
	}
	return req, nil
}

// runCompare applies defaults, validates, executes, and renders the
// compare_tools operation.
func (s *MCPAdoptionToolServer) runCompare(req tools.CompareToolsRequest) (string, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return "", err
	}
	result, err := s.runner.Compare(req)
	if err != nil {
		return "", err
	}
	return render.CompareReport(result), nil
}

// runTrending applies defaults, validates, executes, and renders the
// get_trending_tools operation.
func (s *MCPAdoptionToolServer) runTrending(req tools.GetTrendingToolsRequest) (string, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return "", err
	}
	result, err := s.runner.Trending(req)
	if err != nil {
		return "", err
	}
	return render.TrendingReport(result), nil
}

// runHistory applies defaults, validates, executes, and renders the
// get_tool_history operation.
func (s *MCPAdoptionToolServer) runHistory(req tools.GetToolHistoryRequest) (string, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return "", err
	}
	result, err := s.runner.History(req)
	if err != nil {
		return "", err
	}
	return render.HistoryReport(result), nil
}

// runSearch applies defaults, validates, executes, and renders the
// search_tools operation.
func (s *MCPAdoptionToolServer) runSearch(req tools.SearchToolsRequest) (string, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return "", err
	}
	result, err := s.runner.Search(req)
	if err != nil {
		return "", err
	}
	return render.SearchReport(result), nil
}

// handleCompareTools handles the compare_tools MCP tool call.
func (s *MCPAdoptionToolServer) handleCompareTools(ctx *server.Context, req tools.CompareToolsRequest) (string, error) {
	slog.Info("Processing compare_tools request", "tools", req.Tools, "time_range", req.TimeRange)
	return s.dispatch(tools.ToolCompareTools, func() (string, error) {
		return s.runCompare(req)
	})
}

// handleGetTrendingTools handles the get_trending_tools MCP tool call.
func (s *MCPAdoptionToolServer) handleGetTrendingTools(ctx *server.Context, req tools.GetTrendingToolsRequest) (string, error) {
	slog.Info("Processing get_trending_tools request",
		"time_range", req.TimeRange, "limit", req.Limit, "category", req.Category)
	return s.dispatch(tools.ToolGetTrendingTools, func() (string, error) {
		return s.runTrending(req)
	})
}

// handleGetToolHistory handles the get_tool_history MCP tool call.
func (s *MCPAdoptionToolServer) handleGetToolHistory(ctx *server.Context, req tools.GetToolHistoryRequest) (string, error) {
	slog.Info("Processing get_tool_history request", "tool", req.Tool, "months", req.Months)
	return s.dispatch(tools.ToolGetToolHistory, func() (string, error) {
		return s.runHistory(req)
	})
}

// handleSearchTools handles the search_tools MCP tool call.
func (s *MCPAdoptionToolServer) handleSearchTools(ctx *server.Context, req tools.SearchToolsRequest) (string, error) {
	slog.Info("Processing search_tools request",
		"category", req.Category, "keyword", req.Keyword, "sort_by", req.SortBy)
	return s.dispatch(tools.ToolSearchTools, func() (string, error) {
		return s.runSearch(req)
	})
}
