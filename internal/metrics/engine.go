// Package metrics computes derived adoption metrics over the dataset:
// growth rates, rankings, filtering, and aggregation.
package metrics

import (
	"math"
	"sort"
	"strings"

	"github.com/grzetich/ai-developer-tools-mcp/internal/dataset"
)

// GrowthPercent returns the relative change from previous to current as a
// percentage. When previous is zero there is no valid baseline and the
// growth is defined as 0, not infinity and not an error.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// WindowGrowth describes the growth of a tool's downloads over a window of
// monthly history points.
type WindowGrowth struct {
	Current  int64
	Previous int64
	Percent  float64
}

// Engine computes metrics that need access to the dataset's history.
type Engine struct {
	data *dataset.Dataset
}

// NewEngine returns an Engine reading from the given dataset.
func NewEngine(data *dataset.Dataset) *Engine {
	return &Engine{data: data}
}

// GrowthOverWindow compares the latest history point of the tool against
// the point windowMonths positions earlier. Windows longer than the stored
// history clamp to the earliest available point. Histories with fewer than
// two points yield zero growth rather than an error.
func (e *Engine) GrowthOverWindow(id string, windowMonths int) (WindowGrowth, error) {
	series, err := e.data.History(id, 0)
	if err != nil {
		return WindowGrowth{}, err
	}

	if len(series) == 0 {
		return WindowGrowth{}, nil
	}

	current := series[len(series)-1].Downloads
	prevIdx := len(series) - 1 - windowMonths
	if prevIdx < 0 {
		prevIdx = 0
	}
	previous := series[prevIdx].Downloads

	return WindowGrowth{
		Current:  current,
		Previous: previous,
		Percent:  GrowthPercent(float64(current), float64(previous)),
	}, nil
}

// SortField names a rankable entry field.
type SortField string

// Rankable fields
const (
	SortByDownloads SortField = "downloads"
	SortByStars     SortField = "stars"
	SortByName      SortField = "name"
)

// ValidSortField reports whether s names a rankable field.
func ValidSortField(s string) bool {
	switch SortField(s) {
	case SortByDownloads, SortByStars, SortByName:
		return true
	}
	return false
}

// Rank returns the entries ordered by the given field. Downloads and stars
// rank descending, name ranks ascending lexicographically. The sort is
// stable: ties keep the input order, which for dataset listings is the
// fixture insertion order.
func Rank(entries []dataset.Entry, field SortField) []dataset.Entry {
	ranked := append([]dataset.Entry(nil), entries...)

	sort.SliceStable(ranked, func(i, j int) bool {
		switch field {
		case SortByStars:
			return ranked[i].Metrics.Stars > ranked[j].Metrics.Stars
		case SortByName:
			return ranked[i].Record.Name < ranked[j].Record.Name
		default:
			return ranked[i].Metrics.MonthlyDownloads > ranked[j].Metrics.MonthlyDownloads
		}
	})

	return ranked
}

// FilterOptions holds the optional, conjunctive search predicates. Zero
// values leave a predicate unset; with no predicates set, Filter returns
// every entry.
type FilterOptions struct {
	// Category keeps entries whose category equals this value.
	Category string

	// MinDownloads keeps entries with at least this many monthly
	// downloads (inclusive).
	MinDownloads int64

	// Keyword keeps entries whose name or description contains this
	// substring, case-insensitively.
	Keyword string
}

// Filter returns the entries matching every set predicate, preserving
// input order.
func Filter(entries []dataset.Entry, opts FilterOptions) []dataset.Entry {
	keyword := strings.ToLower(opts.Keyword)

	var matched []dataset.Entry
	for _, e := range entries {
		if opts.Category != "" && string(e.Record.Category) != opts.Category {
			continue
		}
		if e.Metrics.MonthlyDownloads < opts.MinDownloads {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(e.Record.Name), keyword) &&
			!strings.Contains(strings.ToLower(e.Record.Description), keyword) {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

// Totals is the sum and display-rounded average of a metric over a set of
// entries.
type Totals struct {
	Sum     int64
	Average int64
}

// Aggregate sums the selected metric over the entries and rounds the
// average to the nearest whole unit for display. Callers must not pass an
// empty slice; the aggregate of zero records is undefined.
func Aggregate(entries []dataset.Entry, value func(dataset.Entry) int64) Totals {
	var sum int64
	for _, e := range entries {
		sum += value(e)
	}
	avg := int64(math.Round(float64(sum) / float64(len(entries))))
	return Totals{Sum: sum, Average: avg}
}

// MonthlyDownloads selects the monthly download count of an entry, the
// metric the search summary aggregates.
func MonthlyDownloads(e dataset.Entry) int64 {
	return e.Metrics.MonthlyDownloads
}
