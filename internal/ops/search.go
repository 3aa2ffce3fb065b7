package ops

import (
	"log/slog"

	"github.com/grzetich/ai-developer-tools-mcp/internal/dataset"
	"github.com/grzetich/ai-developer-tools-mcp/internal/metrics"
	"github.com/grzetich/ai-developer-tools-mcp/internal/tools"
)

// SearchResult holds the filtered, sorted entries with an optional
// summary aggregate.
type SearchResult struct {
	// Filters echoes the request so the renderer can report which
	// predicates were applied.
	Filters tools.SearchToolsRequest

	Tools []dataset.Entry

	// Summary is the total and average monthly downloads over the result
	// set. It is nil when no tool matched; the aggregate of zero records
	// is skipped, not computed.
	Summary *metrics.Totals
}

// Search applies the conjunctive filter predicates, sorts by the chosen
// field, and aggregates monthly downloads over the matches.
func (r *Runner) Search(req tools.SearchToolsRequest) (*SearchResult, error) {
	slog.Debug("Executing search operation",
		"category", req.Category, "min_downloads", req.MinDownloads,
		"keyword", req.Keyword, "sort_by", req.SortBy)

	matched := metrics.Filter(r.data.List(), metrics.FilterOptions{
		Category:     req.Category,
		MinDownloads: req.MinDownloads,
		Keyword:      req.Keyword,
	})
	matched = metrics.Rank(matched, metrics.SortField(req.SortBy))

	result := &SearchResult{
		Filters: req,
		Tools:   matched,
	}

	if len(matched) > 0 {
		totals := metrics.Aggregate(matched, metrics.MonthlyDownloads)
		result.Summary = &totals
	}

	return result, nil
}
