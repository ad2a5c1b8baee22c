// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package insights turns the raw collection (books plus the reading progress
ledger) into series completion and reading statistics.

The computation functions ([ComputeSeriesInsights], [ComputeReadingStats],
[Compute]) are pure: identical inputs always produce identical outputs and no
I/O is performed. [Service] wraps them with data fetching and a time-boxed
cache for the HTTP layer.
*/
package insights

import (
	"math"

	"github.com/taibuivan/shelfmark/internal/library"
)

// CollectionInsights is the payload of GET /insights.
type CollectionInsights struct {
	Stats            ReadingStats    `json:"stats"`
	CompleteSeries   []SeriesInsight `json:"completeSeries"`
	IncompleteSeries []SeriesInsight `json:"incompleteSeries"`
}

// Compute combines the statistics of the whole collection with the series
// breakdown restricted to bookType (nil means every type).
func Compute(books []library.Book, progress []library.ReadingProgress, bookType *library.BookType) CollectionInsights {
	series := ComputeSeriesInsights(books, progress, bookType)
	return CollectionInsights{
		Stats:            ComputeReadingStats(books, progress),
		CompleteSeries:   series.CompleteSeries,
		IncompleteSeries: series.IncompleteSeries,
	}
}

// percentage returns round(part/total*100), or 0 when total is 0.
func percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
