package tools

import (
	"testing"

	"github.com/grzetich/ai-developer-tools-mcp/internal/errortypes"
)

func expectValidationError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected a validation error for %s, got nil", context)
	}
	if !errortypes.IsValidationError(err) {
		t.Errorf("Expected a validation error for %s, got %v", context, err)
	}
}

func TestGrowthWindow(t *testing.T) {
	if got := GrowthWindow("90d"); got != 3 {
		t.Errorf("Expected a 3 month window for 90d, got %d", got)
	}
	if got := GrowthWindow("30d"); got != 1 {
		t.Errorf("Expected a 1 month window for 30d, got %d", got)
	}
	if got := GrowthWindow("7d"); got != 1 {
		t.Errorf("Expected a 1 month window for 7d, got %d", got)
	}
}

func TestCompareToolsRequestDefaults(t *testing.T) {
	req := CompareToolsRequest{Tools: []string{"openai", "anthropic"}}
	req.ApplyDefaults()

	if req.TimeRange != DefaultTimeRange {
		t.Errorf("Expected default time range %q, got %q", DefaultTimeRange, req.TimeRange)
	}
	if err := req.Validate(); err != nil {
		t.Errorf("Expected defaulted request to validate, got %v", err)
	}
}

func TestCompareToolsRequestValidation(t *testing.T) {
	req := CompareToolsRequest{Tools: []string{"openai"}, TimeRange: "30d"}
	expectValidationError(t, req.Validate(), "one tool id")

	req = CompareToolsRequest{
		Tools:     []string{"openai", "anthropic", "cursor", "copilot"},
		TimeRange: "30d",
	}
	expectValidationError(t, req.Validate(), "four tool ids")

	req = CompareToolsRequest{Tools: []string{"openai", "anthropic"}, TimeRange: "1y"}
	expectValidationError(t, req.Validate(), "bad time range")
}

func TestGetTrendingToolsRequestDefaults(t *testing.T) {
	req := GetTrendingToolsRequest{}
	req.ApplyDefaults()

	if req.TimeRange != DefaultTimeRange {
		t.Errorf("Expected default time range %q, got %q", DefaultTimeRange, req.TimeRange)
	}
	if req.Limit != DefaultTrendingLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultTrendingLimit, req.Limit)
	}
	if req.Category != CategoryAll {
		t.Errorf("Expected default category %q, got %q", CategoryAll, req.Category)
	}
	if err := req.Validate(); err != nil {
		t.Errorf("Expected defaulted request to validate, got %v", err)
	}
}

func TestGetTrendingToolsRequestValidation(t *testing.T) {
	req := GetTrendingToolsRequest{TimeRange: "30d", Limit: 2, Category: CategoryAll}
	expectValidationError(t, req.Validate(), "limit below minimum")

	req = GetTrendingToolsRequest{TimeRange: "30d", Limit: 11, Category: CategoryAll}
	expectValidationError(t, req.Validate(), "limit above maximum")

	req = GetTrendingToolsRequest{TimeRange: "30d", Limit: 5, Category: "desktop"}
	expectValidationError(t, req.Validate(), "unknown category")

	req = GetTrendingToolsRequest{TimeRange: "30d", Limit: 5, Category: "editor"}
	if err := req.Validate(); err != nil {
		t.Errorf("Expected a concrete category to validate, got %v", err)
	}
}

func TestGetToolHistoryRequestDefaults(t *testing.T) {
	req := GetToolHistoryRequest{Tool: "openai"}
	req.ApplyDefaults()

	if req.Months != DefaultHistoryMonths {
		t.Errorf("Expected default months %d, got %d", DefaultHistoryMonths, req.Months)
	}
	if err := req.Validate(); err != nil {
		t.Errorf("Expected defaulted request to validate, got %v", err)
	}
}

func TestGetToolHistoryRequestValidation(t *testing.T) {
	req := GetToolHistoryRequest{Tool: "", Months: 6}
	expectValidationError(t, req.Validate(), "missing tool id")

	req = GetToolHistoryRequest{Tool: "openai", Months: 2}
	expectValidationError(t, req.Validate(), "months below minimum")

	req = GetToolHistoryRequest{Tool: "openai", Months: 13}
	expectValidationError(t, req.Validate(), "months above maximum")
}

func TestSearchToolsRequestDefaults(t *testing.T) {
	req := SearchToolsRequest{}
	req.ApplyDefaults()

	if req.SortBy != DefaultSortBy {
		t.Errorf("Expected default sort %q, got %q", DefaultSortBy, req.SortBy)
	}
	if err := req.Validate(); err != nil {
		t.Errorf("Expected defaulted request to validate, got %v", err)
	}
}

func TestSearchToolsRequestValidation(t *testing.T) {
	req := SearchToolsRequest{Category: "desktop", SortBy: "downloads"}
	expectValidationError(t, req.Validate(), "unknown category")

	req = SearchToolsRequest{MinDownloads: -1, SortBy: "downloads"}
	expectValidationError(t, req.Validate(), "negative min downloads")

	req = SearchToolsRequest{SortBy: "growth"}
	expectValidationError(t, req.Validate(), "unknown sort field")

	req = SearchToolsRequest{Category: "llm-api", MinDownloads: 10000000, Keyword: "api", SortBy: "stars"}
	if err := req.Validate(); err != nil {
		t.Errorf("Expected a fully specified request to validate, got %v", err)
	}
}
