package ops

import (
	"log/slog"
	"sort"

	"github.com/grzetich/ai-developer-tools-mcp/internal/metrics"
	"github.com/grzetich/ai-developer-tools-mcp/internal/tools"
)

// TrendingResult holds the tools ranked by growth percent descending,
// truncated to the requested limit.
type TrendingResult struct {
	TimeRange string
	Category  string
	Limit     int

	// Total is the number of tools considered after the category filter,
	// before truncation.
	Total int

	Tools []ToolStats
}

// Trending stages the full listing by monthly downloads descending,
// applies the category filter, computes growth for every remaining tool,
// then re-sorts by growth percent descending. The downloads ranking is
// only a deterministic staging order; growth order is the output order.
func (r *Runner) Trending(req tools.GetTrendingToolsRequest) (*TrendingResult, error) {
	slog.Debug("Executing trending operation",
		"time_range", req.TimeRange, "limit", req.Limit, "category", req.Category)

	entries := metrics.Rank(r.data.List(), metrics.SortByDownloads)
	if req.Category != tools.CategoryAll {
		entries = metrics.Filter(entries, metrics.FilterOptions{Category: req.Category})
	}

	window := tools.GrowthWindow(req.TimeRange)

	ranked := make([]ToolStats, 0, len(entries))
	for _, e := range entries {
		growth, err := r.engine.GrowthOverWindow(e.Record.ID, window)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, ToolStats{Record: e.Record, Metrics: e.Metrics, Growth: growth})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Growth.Percent > ranked[j].Growth.Percent
	})

	result := &TrendingResult{
		TimeRange: req.TimeRange,
		Category:  req.Category,
		Limit:     req.Limit,
		Total:     len(ranked),
	}

	if len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}
	result.Tools = ranked

	return result, nil
}
