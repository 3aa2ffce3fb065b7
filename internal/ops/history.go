package ops

import (
	"errors"
	"log/slog"

	"github.com/grzetich/ai-developer-tools-mcp/internal/dataset"
	"github.com/grzetich/ai-developer-tools-mcp/internal/errortypes"
	"github.com/grzetich/ai-developer-tools-mcp/internal/metrics"
	"github.com/grzetich/ai-developer-tools-mcp/internal/tools"
)

// HistoryResult holds a tool's trailing monthly download series with the
// derived growth figures.
type HistoryResult struct {
	Record dataset.ToolRecord

	// MonthsRequested is the months argument of the request, which may
	// exceed the number of points actually returned.
	MonthsRequested int

	Points []dataset.HistoryPoint

	// TotalGrowth is the growth percent from the first to the last
	// returned point.
	TotalGrowth float64

	// AverageMonthlyGrowth is TotalGrowth divided by the requested
	// months, not by the count of returned points.
	AverageMonthlyGrowth float64
}

// History returns up to the last req.Months points of the tool's series.
// A series shorter than requested is returned as-is, never an error.
func (r *Runner) History(req tools.GetToolHistoryRequest) (*HistoryResult, error) {
	slog.Debug("Executing history operation", "tool", req.Tool, "months", req.Months)

	rec, err := r.data.Tool(req.Tool)
	if err != nil {
		if errors.Is(err, dataset.ErrToolNotFound) {
			return nil, errortypes.UnknownToolError(err, "unknown tool id").
				WithField("tool_id", req.Tool)
		}
		return nil, err
	}

	points, err := r.data.History(req.Tool, req.Months)
	if err != nil {
		return nil, err
	}

	result := &HistoryResult{
		Record:          rec,
		MonthsRequested: req.Months,
		Points:          points,
	}

	if len(points) > 0 {
		first := points[0].Downloads
		last := points[len(points)-1].Downloads
		result.TotalGrowth = metrics.GrowthPercent(float64(last), float64(first))
		result.AverageMonthlyGrowth = result.TotalGrowth / float64(req.Months)
	}

	return result, nil
}
