package ops

import (
	"log/slog"

	"github.com/grzetich/ai-developer-tools-mcp/internal/tools"
)

// CompareResult holds the comparison of two or three tools, in request
// order, with the two computed highlights as indexes into Tools.
type CompareResult struct {
	TimeRange string
	Tools     []ToolStats

	// Leader indexes the tool with the most monthly downloads.
	Leader int

	// FastestGrowing indexes the tool with the highest growth percent.
	FastestGrowing int
}

// Compare fetches record, metrics, and window growth for each requested
// id and computes the two highlights. Ties on a highlight keep the first
// occurrence in the request order.
func (r *Runner) Compare(req tools.CompareToolsRequest) (*CompareResult, error) {
	slog.Debug("Executing compare operation", "tools", req.Tools, "time_range", req.TimeRange)

	window := tools.GrowthWindow(req.TimeRange)

	result := &CompareResult{
		TimeRange: req.TimeRange,
		Tools:     make([]ToolStats, 0, len(req.Tools)),
	}

	for _, id := range req.Tools {
		stats, err := r.lookup(id, window)
		if err != nil {
			return nil, err
		}
		result.Tools = append(result.Tools, stats)
	}

	for i, s := range result.Tools {
		if s.Metrics.MonthlyDownloads > result.Tools[result.Leader].Metrics.MonthlyDownloads {
			result.Leader = i
		}
		if s.Growth.Percent > result.Tools[result.FastestGrowing].Growth.Percent {
			result.FastestGrowing = i
		}
	}

	return result, nil
}
