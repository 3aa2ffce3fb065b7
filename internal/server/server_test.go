package server

import (
	"strings"
	"testing"

	"github.com/grzetich/ai-developer-tools-mcp/internal/dataset"
	"github.com/grzetich/ai-developer-tools-mcp/internal/telemetry"
	"github.com/grzetich/ai-developer-tools-mcp/internal/tools"
)

func newTestServer(t *testing.T) (*MCPAdoptionToolServer, *telemetry.MetricsCollector) {
	t.Helper()

	collector := telemetry.NewMetricsCollector()
	srv := NewAdoptionToolServer(dataset.Default(), collector, Options{Name: "ai-dev-tools-test"})
	if err := srv.Initialize(); err != nil {
		t.Fatalf("Failed to initialize server: %v", err)
	}
	return srv, collector
}

func TestInitializeRequiresDependencies(t *testing.T) {
	srv := NewAdoptionToolServer(nil, nil, Options{})
	if err := srv.Initialize(); err == nil {
		t.Error("Expected initialization to fail without dependencies")
	}
}

func TestOperationsListsAllFourTools(t *testing.T) {
	srv, _ := newTestServer(t)

	infos := srv.Operations()
	if len(infos) != 4 {
		t.Fatalf("Expected 4 registered operations, got %d", len(infos))
	}

	want := []string{
		tools.ToolCompareTools,
		tools.ToolGetTrendingTools,
		tools.ToolGetToolHistory,
		tools.ToolSearchTools,
	}
	for i, name := range want {
		if infos[i].Name != name {
			t.Errorf("Expected operation %q at position %d, got %q", name, i, infos[i].Name)
		}
		if infos[i].Description == "" {
			t.Errorf("Expected a description for %q", name)
		}
	}
}

func TestInvokeUnknownOperation(t *testing.T) {
	srv, collector := newTestServer(t)

	text, err := srv.Invoke("drop_database", nil)
	if err == nil {
		t.Fatal("Expected a structured failure for an unregistered operation")
	}
	if text != "" {
		t.Errorf("Expected no text payload on failure, got %q", text)
	}
	if !strings.Contains(err.Error(), FailureCodeUnknownOperation) {
		t.Errorf("Expected %s in the failure message, got %q", FailureCodeUnknownOperation, err.Error())
	}
	if collector.GetCounter(telemetry.MetricCallsUnknownOperation) != 1 {
		t.Error("Expected the unknown-operation counter to increment")
	}
}

func TestInvokeCompareTools(t *testing.T) {
	srv, collector := newTestServer(t)

	text, err := srv.Invoke(tools.ToolCompareTools, map[string]any{
		"tools": []any{"openai", "anthropic"},
	})
	if err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}
	if !strings.Contains(text, "Tool Comparison (30d)") {
		t.Errorf("Expected the default time range in the title, got:\n%s", text)
	}
	if !strings.Contains(text, "OpenAI SDK (openai)") || !strings.Contains(text, "Anthropic SDK (anthropic)") {
		t.Errorf("Expected both tools in the report, got:\n%s", text)
	}

	if collector.GetCounter(telemetry.MetricCallsCompare) != 1 {
		t.Error("Expected the compare call counter to increment")
	}
	if collector.GetCounter(telemetry.MetricCallsSuccess) != 1 {
		t.Error("Expected the success counter to increment")
	}
}

func TestInvokeValidationFailure(t *testing.T) {
	srv, collector := newTestServer(t)

	_, err := srv.Invoke(tools.ToolGetTrendingTools, map[string]any{"limit": 50})
	if err == nil {
		t.Fatal("Expected a validation failure for limit=50")
	}
	if !strings.Contains(err.Error(), FailureCodeInvalidArgument) {
		t.Errorf("Expected %s in the failure message, got %q", FailureCodeInvalidArgument, err.Error())
	}
	if collector.GetCounter(telemetry.MetricCallsFailure) != 1 {
		t.Error("Expected the failure counter to increment")
	}
}

func TestInvokeUnknownToolFailure(t *testing.T) {
	srv, _ := newTestServer(t)

	_, err := srv.Invoke(tools.ToolGetToolHistory, map[string]any{"tool": "emacs"})
	if err == nil {
		t.Fatal("Expected an unknown-tool failure")
	}
	if !strings.Contains(err.Error(), FailureCodeUnknownTool) {
		t.Errorf("Expected %s in the failure message, got %q", FailureCodeUnknownTool, err.Error())
	}
}

func TestInvokeMalformedArguments(t *testing.T) {
	srv, _ := newTestServer(t)

	_, err := srv.Invoke(tools.ToolCompareTools, map[string]any{"tools": "openai"})
	if err == nil {
		t.Fatal("Expected a failure for arguments that do not match the schema")
	}
	if !strings.Contains(err.Error(), FailureCodeInvalidArgument) {
		t.Errorf("Expected %s for malformed arguments, got %q", FailureCodeInvalidArgument, err.Error())
	}
}

func TestFailureDoesNotPoisonLaterCalls(t *testing.T) {
	srv, _ := newTestServer(t)

	// A failing call must leave the dispatcher fully able to serve the
	// next one.
	if _, err := srv.Invoke(tools.ToolCompareTools, map[string]any{
		"tools": []any{"openai", "emacs"},
	}); err == nil {
		t.Fatal("Expected the first call to fail")
	}

	text, err := srv.Invoke(tools.ToolCompareTools, map[string]any{
		"tools": []any{"openai", "anthropic"},
	})
	if err != nil {
		t.Fatalf("Expected the second call to succeed, got %v", err)
	}
	if !strings.Contains(text, "OpenAI SDK") {
		t.Errorf("Unexpected report after a prior failure:\n%s", text)
	}
}

func TestInvokeIsIdempotent(t *testing.T) {
	srv, _ := newTestServer(t)

	args := map[string]any{"category": "llm-api", "sort_by": "stars"}
	first, err := srv.Invoke(tools.ToolSearchTools, args)
	if err != nil {
		t.Fatal(err)
	}
	second, err := srv.Invoke(tools.ToolSearchTools, args)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Error("Identical invocations produced different rendered text")
	}
}

func TestHandlersShareTheDispatchPipeline(t *testing.T) {
	srv, collector := newTestServer(t)

	text, err := srv.handleGetTrendingTools(nil, tools.GetTrendingToolsRequest{Limit: 3})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if !strings.Contains(text, "Trending AI Developer Tools") {
		t.Errorf("Unexpected report:\n%s", text)
	}
	if collector.GetCounter(telemetry.MetricCallsTrending) != 1 {
		t.Error("Expected the trending call counter to increment")
	}

	// Handler failures convert to structured failures too.
	_, err = srv.handleGetToolHistory(nil, tools.GetToolHistoryRequest{Tool: "emacs"})
	if err == nil || !strings.Contains(err.Error(), FailureCodeUnknownTool) {
		t.Errorf("Expected an unknown-tool failure from the handler, got %v", err)
	}
}

func TestDispatchRecoversFromPanic(t *testing.T) {
	srv, collector := newTestServer(t)

	text, err := srv.dispatch("compare_tools", func() (string, error) {
		panic("boom")
	})
	if text != "" {
		t.Errorf("Expected no text from a panicking operation, got %q", text)
	}
	if err == nil {
		t.Fatal("Expected a structured failure from a panicking operation")
	}
	if !strings.Contains(err.Error(), FailureCodeInternal) {
		t.Errorf("Expected %s in the failure message, got %q", FailureCodeInternal, err.Error())
	}
	if collector.GetCounter(telemetry.MetricCallsFailure) != 1 {
		t.Error("Expected the failure counter to increment after a panic")
	}

	// The boundary stays intact for the next call.
	if _, err := srv.Invoke(tools.ToolSearchTools, nil); err != nil {
		t.Errorf("Expected the server to keep serving after a panic, got %v", err)
	}
}
