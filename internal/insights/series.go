package insights

import (
	"cmp"
	"slices"

	"github.com/taibuivan/shelfmark/internal/library"
)

// SeriesItem is a member of a series together with its read flag and parsed ordinal.
type SeriesItem struct {
	library.Book
	IsRead       bool `json:"isRead"`
	VolumeNumber *int `json:"volumeNumber"`
}

// SeriesInsight summarises ownership and reading state of one series.
type SeriesInsight struct {
	SeriesName           string       `json:"seriesName"`
	TotalVolumes         int          `json:"totalVolumes"`
	OwnedVolumes         int          `json:"ownedVolumes"`
	ReadVolumes          int          `json:"readVolumes"`
	CompletionPercentage int          `json:"completionPercentage"`
	IsComplete           bool         `json:"isComplete"`
	MissingVolumes       []string     `json:"missingVolumes"`
	Items                []SeriesItem `json:"items"`
}

// SeriesBreakdown partitions series by completeness.
type SeriesBreakdown struct {
	CompleteSeries   []SeriesInsight `json:"completeSeries"`
	IncompleteSeries []SeriesInsight `json:"incompleteSeries"`
}

// ComputeSeriesInsights groups books by trimmed series name and derives one
// [SeriesInsight] per group. Books without a series are ignored. When bookType
// is non-nil only books of that type are considered.
//
// A series with at least one parseable volume is complete when its owned
// ordinals have no gaps. A series without any parseable volume is complete
// when every member has been read.
func ComputeSeriesInsights(books []library.Book, progress []library.ReadingProgress, bookType *library.BookType) SeriesBreakdown {
	readIndex := library.ReadIndex(progress)

	groups := make(map[string][]SeriesItem)
	order := make([]string, 0)

	for _, book := range books {
		if bookType != nil && book.Type != *bookType {
			continue
		}
		name := book.SeriesName()
		if name == "" {
			continue
		}

		if _, seen := groups[name]; !seen {
			order = append(order, name)
		}
		groups[name] = append(groups[name], SeriesItem{
			Book:         book,
			IsRead:       readIndex[book.ID].IsRead,
			VolumeNumber: ExtractVolumeNumber(book.Volume),
		})
	}

	breakdown := SeriesBreakdown{
		CompleteSeries:   make([]SeriesInsight, 0),
		IncompleteSeries: make([]SeriesInsight, 0),
	}

	for _, name := range order {
		insight := buildSeriesInsight(name, groups[name])
		if insight.IsComplete {
			breakdown.CompleteSeries = append(breakdown.CompleteSeries, insight)
		} else {
			breakdown.IncompleteSeries = append(breakdown.IncompleteSeries, insight)
		}
	}

	slices.SortStableFunc(breakdown.CompleteSeries, compareSeries)
	slices.SortStableFunc(breakdown.IncompleteSeries, compareSeries)

	return breakdown
}

func buildSeriesInsight(name string, items []SeriesItem) SeriesInsight {
	ordinals := make([]int, 0, len(items))
	readCount := 0

	for _, item := range items {
		if item.VolumeNumber != nil {
			ordinals = append(ordinals, *item.VolumeNumber)
		}
		if item.IsRead {
			readCount++
		}
	}

	missing := FindMissingVolumes(ordinals)

	var isComplete bool
	if len(ordinals) > 0 {
		isComplete = len(missing) == 0
	} else {
		isComplete = len(items) > 0 && readCount == len(items)
	}

	// Unparseable volumes sort as ordinal 0, ahead of volume 1.
	slices.SortStableFunc(items, func(a, b SeriesItem) int {
		return cmp.Compare(ordinalOrZero(a.VolumeNumber), ordinalOrZero(b.VolumeNumber))
	})

	return SeriesInsight{
		SeriesName:           name,
		TotalVolumes:         len(items),
		OwnedVolumes:         len(items),
		ReadVolumes:          readCount,
		CompletionPercentage: percentage(readCount, len(items)),
		IsComplete:           isComplete,
		MissingVolumes:       missing,
		Items:                items,
	}
}

// compareSeries orders by completion percentage descending, then name ascending.
func compareSeries(a, b SeriesInsight) int {
	if a.CompletionPercentage != b.CompletionPercentage {
		return cmp.Compare(b.CompletionPercentage, a.CompletionPercentage)
	}
	return cmp.Compare(a.SeriesName, b.SeriesName)
}

func ordinalOrZero(ordinal *int) int {
	if ordinal == nil {
		return 0
	}
	return *ordinal
}
