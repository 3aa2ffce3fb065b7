// Package dataset holds the fixed in-memory table of tracked AI developer
// tools, their current adoption metrics, and their monthly download history.
//
// The dataset is immutable after construction. All lookups are by exact,
// case-sensitive id; a missing id is reported as ErrToolNotFound rather than
// silently substituted with empty metrics. A tool's history may legitimately
// be empty or shorter than a requested window.
package dataset

import (
	"fmt"
)

// Category classifies a tool within the fixed category set.
type Category string

// Tool categories
const (
	CategoryLLMAPI    Category = "llm-api"
	CategoryEditor    Category = "editor"
	CategoryAssistant Category = "assistant"
	CategoryFramework Category = "framework"
)

// Categories lists every valid category in declaration order.
func Categories() []Category {
	return []Category{CategoryLLMAPI, CategoryEditor, CategoryAssistant, CategoryFramework}
}

// ValidCategory reports whether s names a known category.
func ValidCategory(s string) bool {
	for _, c := range Categories() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// ToolRecord describes one trackable software package or product.
type ToolRecord struct {
	// ID is the unique short identifier and stable lookup key.
	ID string `json:"id"`

	// Name is the display string.
	Name string `json:"name"`

	// Package is the ecosystem package name.
	Package string `json:"package"`

	// Description is a one-line description of the tool.
	Description string `json:"description"`

	// Category is one of the fixed category set.
	Category Category `json:"category"`
}

// Metrics holds the current adoption snapshot for one tool.
type Metrics struct {
	MonthlyDownloads int64 `json:"monthly_downloads"`
	WeeklyDownloads  int64 `json:"weekly_downloads"`
	Stars            int64 `json:"stars"`

	// Questions30d counts developer questions mentioning the tool in the
	// last 30 days.
	Questions30d int64 `json:"questions_30d"`

	// Mentions30d counts social mentions of the tool in the last 30 days.
	Mentions30d int64 `json:"mentions_30d"`

	// LastUpdated is the calendar date the snapshot was taken.
	LastUpdated string `json:"last_updated"`
}

// HistoryPoint is one monthly sample in a tool's download time series.
type HistoryPoint struct {
	// Month is the year-month key, e.g. "2026-08".
	Month string `json:"month"`

	Downloads int64 `json:"downloads"`
}

// Tool bundles a record with its metrics and history for construction.
type Tool struct {
	Record  ToolRecord
	Metrics Metrics
	History []HistoryPoint
}

// Entry pairs a record with its current metrics for listing.
type Entry struct {
	Record  ToolRecord
	Metrics Metrics
}

// ErrToolNotFound is returned for lookups of ids not present in the dataset.
var ErrToolNotFound = fmt.Errorf("tool not found")

// Dataset is the immutable in-memory table. Iteration order is the
// insertion order of the tools passed to New.
type Dataset struct {
	order   []string
	records map[string]ToolRecord
	metrics map[string]Metrics
	history map[string][]HistoryPoint
}

// New builds a Dataset from the given tools, verifying the dataset
// invariants: unique ids, non-negative counts, and history ordered
// ascending by month with no duplicates.
func New(toolList []Tool) (*Dataset, error) {
	d := &Dataset{
		records: make(map[string]ToolRecord, len(toolList)),
		metrics: make(map[string]Metrics, len(toolList)),
		history: make(map[string][]HistoryPoint, len(toolList)),
	}

	for _, t := range toolList {
		id := t.Record.ID
		if id == "" {
			return nil, fmt.Errorf("tool record with empty id")
		}
		if _, exists := d.records[id]; exists {
			return nil, fmt.Errorf("duplicate tool id %q", id)
		}
		if !ValidCategory(string(t.Record.Category)) {
			return nil, fmt.Errorf("tool %q has invalid category %q", id, t.Record.Category)
		}
		if t.Metrics.MonthlyDownloads < 0 || t.Metrics.WeeklyDownloads < 0 ||
			t.Metrics.Stars < 0 || t.Metrics.Questions30d < 0 || t.Metrics.Mentions30d < 0 {
			return nil, fmt.Errorf("tool %q has negative metrics", id)
		}
		for i, p := range t.History {
			if p.Downloads < 0 {
				return nil, fmt.Errorf("tool %q has negative downloads in history month %q", id, p.Month)
			}
			if i > 0 && t.History[i-1].Month >= p.Month {
				return nil, fmt.Errorf("tool %q history is not strictly ascending at month %q", id, p.Month)
			}
		}

		d.order = append(d.order, id)
		d.records[id] = t.Record
		d.metrics[id] = t.Metrics
		d.history[id] = append([]HistoryPoint(nil), t.History...)
	}

	return d, nil
}

// Tool returns the record for the given id.
func (d *Dataset) Tool(id string) (ToolRecord, error) {
	rec, ok := d.records[id]
	if !ok {
		return ToolRecord{}, fmt.Errorf("%w: %s", ErrToolNotFound, id)
	}
	return rec, nil
}

// Metrics returns the current metrics snapshot for the given id.
func (d *Dataset) Metrics(id string) (Metrics, error) {
	m, ok := d.metrics[id]
	if !ok {
		return Metrics{}, fmt.Errorf("%w: %s", ErrToolNotFound, id)
	}
	return m, nil
}

// History returns up to the last months points of the tool's time series,
// ordered ascending by month. A non-positive months returns the full
// series. Fewer points than requested is not an error.
func (d *Dataset) History(id string, months int) ([]HistoryPoint, error) {
	series, ok := d.history[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, id)
	}

	if months > 0 && months < len(series) {
		series = series[len(series)-months:]
	}
	return append([]HistoryPoint(nil), series...), nil
}

// Has reports whether the dataset contains the given id.
func (d *Dataset) Has(id string) bool {
	_, ok := d.records[id]
	return ok
}

// IDs returns the tool ids in insertion order.
func (d *Dataset) IDs() []string {
	return append([]string(nil), d.order...)
}

// List returns every record with its metrics in insertion order.
func (d *Dataset) List() []Entry {
	entries := make([]Entry, 0, len(d.order))
	for _, id := range d.order {
		entries = append(entries, Entry{Record: d.records[id], Metrics: d.metrics[id]})
	}
	return entries
}

// Len returns the number of tools in the dataset.
func (d *Dataset) Len() int {
	return len(d.order)
}
