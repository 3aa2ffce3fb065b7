package render

import (
	"strings"
	"testing"

	"github.com/grzetich/ai-developer-tools-mcp/internal/dataset"
	"github.com/grzetich/ai-developer-tools-mcp/internal/ops"
	"github.com/grzetich/ai-developer-tools-mcp/internal/tools"
)

func TestFormatCount(t *testing.T) {
	cases := []struct {
		value int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1K"},
		{1499, "1K"},
		{1500, "2K"},
		{22450, "22K"},
		{999499, "999K"},
		// Just under a million still renders in K, rounded.
		{999999, "1000K"},
		{1000000, "1.0M"},
		{4800000, "4.8M"},
		{12500000, "12.5M"},
	}

	for _, tc := range cases {
		if got := FormatCount(tc.value); got != tc.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatGrowth(t *testing.T) {
	if got := FormatGrowth(14.2857); got != "+14.3%" {
		t.Errorf("Expected +14.3%%, got %q", got)
	}
	if got := FormatGrowth(-2.04); got != "-2.0%" {
		t.Errorf("Expected -2.0%%, got %q", got)
	}
	if got := FormatGrowth(0); got != "+0.0%" {
		t.Errorf("Expected +0.0%%, got %q", got)
	}
}

func fixtureRunner() *ops.Runner {
	return ops.NewRunner(dataset.Default())
}

func TestCompareReportNamesEachToolOnce(t *testing.T) {
	runner := fixtureRunner()

	result, err := runner.Compare(tools.CompareToolsRequest{
		Tools: []string{"openai", "anthropic", "cursor"}, TimeRange: "30d",
	})
	if err != nil {
		t.Fatal(err)
	}
	text := CompareReport(result)

	for _, heading := range []string{"OpenAI SDK (openai)", "Anthropic SDK (anthropic)", "Cursor (cursor)"} {
		if got := strings.Count(text, heading); got != 1 {
			t.Errorf("Expected heading %q exactly once, got %d occurrences", heading, got)
		}
	}
	if !strings.Contains(text, "Highlights") {
		t.Error("Expected a highlights section")
	}
	if !strings.Contains(text, "Most downloaded: OpenAI SDK (12.5M monthly downloads)") {
		t.Errorf("Missing download leader line in:\n%s", text)
	}
	if !strings.Contains(text, "Fastest growing: Anthropic SDK (+14.3% over 30d)") {
		t.Errorf("Missing fastest-growing line in:\n%s", text)
	}
}

func TestTrendingReportOrderAndCounts(t *testing.T) {
	runner := fixtureRunner()

	result, err := runner.Trending(tools.GetTrendingToolsRequest{
		TimeRange: "30d", Limit: 3, Category: "all",
	})
	if err != nil {
		t.Fatal(err)
	}
	text := TrendingReport(result)

	if !strings.Contains(text, "1. Anthropic SDK (anthropic): +14.3% growth, 4.8M monthly downloads") {
		t.Errorf("Missing first trending entry in:\n%s", text)
	}
	if !strings.Contains(text, "showing 3 of 5 tools") {
		t.Errorf("Missing truncation note in:\n%s", text)
	}
	if strings.Contains(text, "copilot") {
		t.Error("Truncated entries should not appear in the report")
	}
}

func TestHistoryReportSections(t *testing.T) {
	runner := fixtureRunner()

	result, err := runner.History(tools.GetToolHistoryRequest{Tool: "openai", Months: 6})
	if err != nil {
		t.Fatal(err)
	}
	text := HistoryReport(result)

	if !strings.Contains(text, "Download History: OpenAI SDK (openai)") {
		t.Errorf("Missing title in:\n%s", text)
	}
	if !strings.Contains(text, "2026-03: 9.1M downloads") {
		t.Errorf("Missing first history line in:\n%s", text)
	}
	if !strings.Contains(text, "2026-08: 12.5M downloads") {
		t.Errorf("Missing last history line in:\n%s", text)
	}
	if !strings.Contains(text, "Total growth: +37.4%") {
		t.Errorf("Missing total growth in:\n%s", text)
	}
	if !strings.Contains(text, "Average monthly growth: +6.2%") {
		t.Errorf("Missing average growth in:\n%s", text)
	}
}

func TestSearchReportFiltersAndSummary(t *testing.T) {
	runner := fixtureRunner()

	result, err := runner.Search(tools.SearchToolsRequest{
		Category: "llm-api", MinDownloads: 10000000, SortBy: "downloads",
	})
	if err != nil {
		t.Fatal(err)
	}
	text := SearchReport(result)

	if !strings.Contains(text, "Tool Search Results (1 matches)") {
		t.Errorf("Missing title in:\n%s", text)
	}
	if !strings.Contains(text, "category: llm-api") {
		t.Errorf("Missing category filter line in:\n%s", text)
	}
	if !strings.Contains(text, "min downloads: 10.0M") {
		t.Errorf("Missing min-downloads filter line in:\n%s", text)
	}
	if !strings.Contains(text, "Total monthly downloads: 12.5M") {
		t.Errorf("Missing summary total in:\n%s", text)
	}
}

func TestSearchReportEmptyResultOmitsSummary(t *testing.T) {
	runner := fixtureRunner()

	result, err := runner.Search(tools.SearchToolsRequest{
		Keyword: "nonexistent", SortBy: "downloads",
	})
	if err != nil {
		t.Fatal(err)
	}
	text := SearchReport(result)

	if !strings.Contains(text, "No tools matched the given filters.") {
		t.Errorf("Missing empty-result notice in:\n%s", text)
	}
	if strings.Contains(text, "Summary") {
		t.Error("Expected no summary section for an empty result")
	}
}

func TestReportsAreDeterministic(t *testing.T) {
	runner := fixtureRunner()

	req := tools.CompareToolsRequest{Tools: []string{"openai", "langchain"}, TimeRange: "90d"}
	first, err := runner.Compare(req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := runner.Compare(req)
	if err != nil {
		t.Fatal(err)
	}

	if CompareReport(first) != CompareReport(second) {
		t.Error("Identical input produced different rendered text")
	}
}
