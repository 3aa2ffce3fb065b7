// Package tools defines the tool names, input schemas, and validation
// rules for the AI developer tools service.
package tools

import (
	"fmt"

	"github.com/grzetich/ai-developer-tools-mcp/internal/dataset"
	"github.com/grzetich/ai-developer-tools-mcp/internal/errortypes"
	"github.com/grzetich/ai-developer-tools-mcp/internal/metrics"
)

const (
	// ToolCompareTools is the name of the compare_tools MCP tool
	ToolCompareTools = "compare_tools"

	// ToolGetTrendingTools is the name of the get_trending_tools MCP tool
	ToolGetTrendingTools = "get_trending_tools"

	// ToolGetToolHistory is the name of the get_tool_history MCP tool
	ToolGetToolHistory = "get_tool_history"

	// ToolSearchTools is the name of the search_tools MCP tool
	ToolSearchTools = "search_tools"
)

// Argument bounds and defaults
const (
	// DefaultTimeRange is the time range used when a request omits one
	DefaultTimeRange = "30d"

	// MinCompareTools and MaxCompareTools bound the number of ids a
	// compare_tools request may name
	MinCompareTools = 2
	MaxCompareTools = 3

	// DefaultTrendingLimit is the number of trending entries returned
	// when no limit is specified
	DefaultTrendingLimit = 5
	MinTrendingLimit     = 3
	MaxTrendingLimit     = 10

	// DefaultHistoryMonths is the history window used when a
	// get_tool_history request omits one
	DefaultHistoryMonths = 6
	MinHistoryMonths     = 3
	MaxHistoryMonths     = 12

	// DefaultSortBy is the search ordering used when none is specified
	DefaultSortBy = "downloads"

	// CategoryAll matches every category in get_trending_tools
	CategoryAll = "all"
)

// TimeRanges lists the accepted time_range values.
var TimeRanges = []string{"7d", "30d", "90d"}

// ValidTimeRange reports whether s is an accepted time_range value.
func ValidTimeRange(s string) bool {
	for _, r := range TimeRanges {
		if s == r {
			return true
		}
	}
	return false
}

// GrowthWindow maps a time_range to the history window, in months, used
// for growth computation: three months for 90d, otherwise one.
func GrowthWindow(timeRange string) int {
	if timeRange == "90d" {
		return 3
	}
	return 1
}

// CompareToolsRequest defines the input schema for the compare_tools tool
type CompareToolsRequest struct {
	// Tools is the set of 2-3 tool ids to compare
	Tools []string `json:"tools"`

	// TimeRange is the growth window, one of "7d", "30d", "90d"
	TimeRange string `json:"time_range,omitempty"`
}

// ApplyDefaults fills omitted optional arguments with their defaults.
func (r *CompareToolsRequest) ApplyDefaults() {
	if r.TimeRange == "" {
		r.TimeRange = DefaultTimeRange
	}
}

// Validate checks the request against the compare_tools schema.
func (r CompareToolsRequest) Validate() error {
	if len(r.Tools) < MinCompareTools || len(r.Tools) > MaxCompareTools {
		return errortypes.ValidationError(
			fmt.Errorf("got %d tool ids, want %d to %d", len(r.Tools), MinCompareTools, MaxCompareTools),
			"invalid compare_tools request")
	}
	if !ValidTimeRange(r.TimeRange) {
		return errortypes.ValidationError(
			fmt.Errorf("time_range %q is not one of %v", r.TimeRange, TimeRanges),
			"invalid compare_tools request")
	}
	return nil
}

// GetTrendingToolsRequest defines the input schema for the
// get_trending_tools tool
type GetTrendingToolsRequest struct {
	// TimeRange is the growth window, one of "7d", "30d", "90d"
	TimeRange string `json:"time_range,omitempty"`

	// Limit is the maximum number of entries to return, 3-10
	Limit int `json:"limit,omitempty"`

	// Category restricts results to one category, or "all"
	Category string `json:"category,omitempty"`
}

// ApplyDefaults fills omitted optional arguments with their defaults.
func (r *GetTrendingToolsRequest) ApplyDefaults() {
	if r.TimeRange == "" {
		r.TimeRange = DefaultTimeRange
	}
	if r.Limit == 0 {
		r.Limit = DefaultTrendingLimit
	}
	if r.Category == "" {
		r.Category = CategoryAll
	}
}

// Validate checks the request against the get_trending_tools schema.
func (r GetTrendingToolsRequest) Validate() error {
	if !ValidTimeRange(r.TimeRange) {
		return errortypes.ValidationError(
			fmt.Errorf("time_range %q is not one of %v", r.TimeRange, TimeRanges),
			"invalid get_trending_tools request")
	}
	if r.Limit < MinTrendingLimit || r.Limit > MaxTrendingLimit {
		return errortypes.ValidationError(
			fmt.Errorf("limit %d is outside %d to %d", r.Limit, MinTrendingLimit, MaxTrendingLimit),
			"invalid get_trending_tools request")
	}
	if r.Category != CategoryAll && !dataset.ValidCategory(r.Category) {
		return errortypes.ValidationError(
			fmt.Errorf("category %q is not a known category or %q", r.Category, CategoryAll),
			"invalid get_trending_tools request")
	}
	return nil
}

// GetToolHistoryRequest defines the input schema for the get_tool_history
// tool
type GetToolHistoryRequest struct {
	// Tool is the id of the tool whose history to return
	Tool string `json:"tool"`

	// Months is the number of trailing history months to return, 3-12
	Months int `json:"months,omitempty"`
}

// ApplyDefaults fills omitted optional arguments with their defaults.
func (r *GetToolHistoryRequest) ApplyDefaults() {
	if r.Months == 0 {
		r.Months = DefaultHistoryMonths
	}
}

// Validate checks the request against the get_tool_history schema.
func (r GetToolHistoryRequest) Validate() error {
	if r.Tool == "" {
		return errortypes.ValidationError(
			fmt.Errorf("tool id is required"),
			"invalid get_tool_history request")
	}
	if r.Months < MinHistoryMonths || r.Months > MaxHistoryMonths {
		return errortypes.ValidationError(
			fmt.Errorf("months %d is outside %d to %d", r.Months, MinHistoryMonths, MaxHistoryMonths),
			"invalid get_tool_history request")
	}
	return nil
}

// SearchToolsRequest defines the input schema for the search_tools tool
type SearchToolsRequest struct {
	// Category restricts results to one category when set
	Category string `json:"category,omitempty"`

	// MinDownloads keeps tools with at least this many monthly
	// downloads (inclusive)
	MinDownloads int64 `json:"min_downloads,omitempty"`

	// Keyword keeps tools whose name or description contains this
	// substring, case-insensitively
	Keyword string `json:"keyword,omitempty"`

	// SortBy orders results by "downloads", "stars", or "name"
	SortBy string `json:"sort_by,omitempty"`
}

// ApplyDefaults fills omitted optional arguments with their defaults.
func (r *SearchToolsRequest) ApplyDefaults() {
	if r.SortBy == "" {
		r.SortBy = DefaultSortBy
	}
}

// Validate checks the request against the search_tools schema.
func (r SearchToolsRequest) Validate() error {
	if r.Category != "" && !dataset.ValidCategory(r.Category) {
		return errortypes.ValidationError(
			fmt.Errorf("category %q is not a known category", r.Category),
			"invalid search_tools request")
	}
	if r.MinDownloads < 0 {
		return errortypes.ValidationError(
			fmt.Errorf("min_downloads %d is negative", r.MinDownloads),
			"invalid search_tools request")
	}
	if !metrics.ValidSortField(r.SortBy) {
		return errortypes.ValidationError(
			fmt.Errorf("sort_by %q is not one of downloads, stars, name", r.SortBy),
			"invalid search_tools request")
	}
	return nil
}
