// Package ops implements the four query operations of the AI developer
// tools service: compare, trending, history, and search. Each operation
// validates nothing itself; requests arrive already schema-validated and
// defaulted, and operations fail only on dataset conditions such as an
// unknown tool id. An operation either fully succeeds or fully fails;
// there are no partial results.
package ops

import (
	"errors"

	"github.com/grzetich/ai-developer-tools-mcp/internal/dataset"
	"github.com/grzetich/ai-developer-tools-mcp/internal/errortypes"
	"github.com/grzetich/ai-developer-tools-mcp/internal/metrics"
)

// Runner executes operations against one dataset. The dataset and the
// derived metric engine are injected at construction so tests can
// substitute fixture variants.
type Runner struct {
	data   *dataset.Dataset
	engine *metrics.Engine
}

// NewRunner returns a Runner over the given dataset.
func NewRunner(data *dataset.Dataset) *Runner {
	return &Runner{
		data:   data,
		engine: metrics.NewEngine(data),
	}
}

// ToolStats bundles one tool's record, current metrics, and growth over
// the requested window.
type ToolStats struct {
	Record  dataset.ToolRecord
	Metrics dataset.Metrics
	Growth  metrics.WindowGrowth
}

// lookup fetches record, metrics, and window growth for one id, mapping a
// missing id to an unknown-tool error.
func (r *Runner) lookup(id string, window int) (ToolStats, error) {
	rec, err := r.data.Tool(id)
	if err != nil {
		if errors.Is(err, dataset.ErrToolNotFound) {
			return ToolStats{}, errortypes.UnknownToolError(err, "unknown tool id").
				WithField("tool_id", id)
		}
		return ToolStats{}, err
	}

	met, err := r.data.Metrics(id)
	if err != nil {
		return ToolStats{}, err
	}

	growth, err := r.engine.GrowthOverWindow(id, window)
	if err != nil {
		return ToolStats{}, err
	}

	return ToolStats{Record: rec, Metrics: met, Growth: growth}, nil
}
