// Package render converts operation results into deterministic textual
// reports for narration by a language-model agent. Output is prose with
// structure, not machine-readable data: identical input always produces
// identical text, across every operation.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grzetich/ai-developer-tools-mcp/internal/ops"
)

// FormatCount renders a download, star, or mention count with the uniform
// unit abbreviations: values of one million or more as a one-decimal "M"
// figure, values of one thousand or more as a rounded whole "K" figure,
// and smaller values as the plain integer.
func FormatCount(v int64) string {
	switch {
	case v >= 1000000:
		return fmt.Sprintf("%.1fM", float64(v)/1e6)
	case v >= 1000:
		return fmt.Sprintf("%dK", int64(math.Round(float64(v)/1e3)))
	default:
		return strconv.FormatInt(v, 10)
	}
}

// FormatGrowth renders a growth percent with one decimal and an explicit
// sign, e.g. "+14.3%" or "-2.0%".
func FormatGrowth(p float64) string {
	return fmt.Sprintf("%+.1f%%", p)
}

func writeTitle(b *strings.Builder, title string) {
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(title)))
	b.WriteString("\n")
}

// CompareReport renders a compare_tools result.
func CompareReport(res *ops.CompareResult) string {
	var b strings.Builder
	writeTitle(&b, fmt.Sprintf("Tool Comparison (%s)", res.TimeRange))

	for _, t := range res.Tools {
		fmt.Fprintf(&b, "\n%s (%s)\n", t.Record.Name, t.Record.ID)
		fmt.Fprintf(&b, "  Category: %s\n", t.Record.Category)
		fmt.Fprintf(&b, "  Monthly downloads: %s\n", FormatCount(t.Metrics.MonthlyDownloads))
		fmt.Fprintf(&b, "  Weekly downloads: %s\n", FormatCount(t.Metrics.WeeklyDownloads))
		fmt.Fprintf(&b, "  Stars: %s\n", FormatCount(t.Metrics.Stars))
		fmt.Fprintf(&b, "  Questions (30d): %s\n", FormatCount(t.Metrics.Questions30d))
		fmt.Fprintf(&b, "  Mentions (30d): %s\n", FormatCount(t.Metrics.Mentions30d))
		fmt.Fprintf(&b, "  Growth (%s): %s\n", res.TimeRange, FormatGrowth(t.Growth.Percent))
	}

	leader := res.Tools[res.Leader]
	fastest := res.Tools[res.FastestGrowing]
	b.WriteString("\nHighlights\n")
	fmt.Fprintf(&b, "  Most downloaded: %s (%s monthly downloads)\n",
		leader.Record.Name, FormatCount(leader.Metrics.MonthlyDownloads))
	fmt.Fprintf(&b, "  Fastest growing: %s (%s over %s)\n",
		fastest.Record.Name, FormatGrowth(fastest.Growth.Percent), res.TimeRange)

	return b.String()
}

// TrendingReport renders a get_trending_tools result.
func TrendingReport(res *ops.TrendingResult) string {
	var b strings.Builder

	scope := "all categories"
	if res.Category != "all" {
		scope = res.Category + " category"
	}
	writeTitle(&b, fmt.Sprintf("Trending AI Developer Tools (%s, %s)", res.TimeRange, scope))
	b.WriteString("\n")

	for i, t := range res.Tools {
		fmt.Fprintf(&b, "  %d. %s (%s): %s growth, %s monthly downloads\n",
			i+1, t.Record.Name, t.Record.ID,
			FormatGrowth(t.Growth.Percent), FormatCount(t.Metrics.MonthlyDownloads))
	}
	if len(res.Tools) == 0 {
		b.WriteString("  No tools in this category.\n")
	}

	fmt.Fprintf(&b, "\nRanked by download growth over %s, showing %d of %d tools.\n",
		res.TimeRange, len(res.Tools), res.Total)

	return b.String()
}

// HistoryReport renders a get_tool_history result.
func HistoryReport(res *ops.HistoryResult) string {
	var b strings.Builder
	writeTitle(&b, fmt.Sprintf("Download History: %s (%s)", res.Record.Name, res.Record.ID))
	b.WriteString("\n")

	for _, p := range res.Points {
		fmt.Fprintf(&b, "  %s: %s downloads\n", p.Month, FormatCount(p.Downloads))
	}
	if len(res.Points) == 0 {
		b.WriteString("  No history recorded.\n")
	}

	b.WriteString("\nSummary\n")
	fmt.Fprintf(&b, "  Months requested: %d, months available: %d\n",
		res.MonthsRequested, len(res.Points))
	fmt.Fprintf(&b, "  Total growth: %s\n", FormatGrowth(res.TotalGrowth))
	fmt.Fprintf(&b, "  Average monthly growth: %s\n", FormatGrowth(res.AverageMonthlyGrowth))

	return b.String()
}

// SearchReport renders a search_tools result.
func SearchReport(res *ops.SearchResult) string {
	var b strings.Builder
	writeTitle(&b, fmt.Sprintf("Tool Search Results (%d matches)", len(res.Tools)))

	b.WriteString("\nFilters applied:\n")
	if res.Filters.Category != "" {
		fmt.Fprintf(&b, "  category: %s\n", res.Filters.Category)
	}
	if res.Filters.MinDownloads > 0 {
		fmt.Fprintf(&b, "  min downloads: %s\n", FormatCount(res.Filters.MinDownloads))
	}
	if res.Filters.Keyword != "" {
		fmt.Fprintf(&b, "  keyword: %q\n", res.Filters.Keyword)
	}
	fmt.Fprintf(&b, "  sort by: %s\n", res.Filters.SortBy)

	if len(res.Tools) == 0 {
		b.WriteString("\nNo tools matched the given filters.\n")
		return b.String()
	}

	b.WriteString("\nMatches:\n")
	for _, e := range res.Tools {
		fmt.Fprintf(&b, "  %s (%s): %s, %s monthly downloads, %s stars\n",
			e.Record.Name, e.Record.ID, e.Record.Category,
			FormatCount(e.Metrics.MonthlyDownloads), FormatCount(e.Metrics.Stars))
	}

	b.WriteString("\nSummary\n")
	fmt.Fprintf(&b, "  Total monthly downloads: %s\n", FormatCount(res.Summary.Sum))
	fmt.Fprintf(&b, "  Average monthly downloads: %s\n", FormatCount(res.Summary.Average))

	return b.String()
}
