// Package pipeline implements the pure transformation stages between the
// raw trade records and the presentation artifacts: filtering, enrichment,
// aggregation, balance reconciliation, flow-graph building and forecasting.
// Every stage takes records in and returns new values out; nothing here
// mutates its input or touches I/O.
package pipeline

import (
	"github.com/avnergomes/comexstat-parana/internal/domain/models"
)

// FilterOptions bounds the record set a run works on.
type FilterOptions struct {
	// Region keeps only records declared in this UF; empty keeps all.
	Region string
	// Chapters is the allowed NCM chapter set. A nil map keeps all
	// chapters.
	Chapters map[int]bool
	// YearStart and YearEnd bound the period, inclusive; zero means
	// unbounded on that side.
	YearStart int
	YearEnd   int
}

// Filter returns the records inside the configured scope. Records with a
// malformed product code carry no usable chapter and are dropped here, so
// every record downstream of the filter has a valid chapter.
func Filter(records []models.TradeRecord, opts FilterOptions) []models.TradeRecord {
	out := make([]models.TradeRecord, 0, len(records))
	for _, r := range records {
		if InScope(r, opts) {
			out = append(out, r)
		}
	}
	return out
}

// InScope reports whether a single record falls inside the configured
// scope. Ingestion applies it per row before persisting, so the database
// and the in-memory pipeline share one scope definition.
func InScope(r models.TradeRecord, opts FilterOptions) bool {
	chapter, ok := r.Chapter()
	if !ok {
		return false
	}
	if opts.Chapters != nil && !opts.Chapters[chapter] {
		return false
	}
	if opts.Region != "" && r.Region != opts.Region {
		return false
	}
	if opts.YearStart != 0 && r.Year < opts.YearStart {
		return false
	}
	if opts.YearEnd != 0 && r.Year > opts.YearEnd {
		return false
	}
	return true
}
