package insights

import (
	"slices"
	"time"

	"github.com/taibuivan/shelfmark/internal/library"
)

// recentlyCompletedLimit caps [ReadingStats.RecentlyCompleted].
const recentlyCompletedLimit = 5

// TypeStats counts books of one type.
type TypeStats struct {
	Total int `json:"total"`
	Read  int `json:"read"`
}

// CompletedBook is an entry of the recently completed list.
type CompletedBook struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	CompletedAt time.Time        `json:"completedAt"`
	CoverURL    *string          `json:"coverUrl"`
	Type        library.BookType `json:"type"`
}

// ReadingStats aggregates read state across the collection.
type ReadingStats struct {
	Total             int                            `json:"total"`
	Read              int                            `json:"read"`
	Unread            int                            `json:"unread"`
	ReadPercentage    int                            `json:"readPercentage"`
	ByType            map[library.BookType]TypeStats `json:"byType"`
	RecentlyCompleted []CompletedBook                `json:"recentlyCompleted"`
}

// statTypes are the types broken down in [ReadingStats.ByType].
var statTypes = []library.BookType{library.TypeComic, library.TypeManga, library.TypeGraphicNovel}

// ComputeReadingStats left-joins books to their progress rows; a book without
// a row counts as unread. Callers wanting a single type pre-filter books.
func ComputeReadingStats(books []library.Book, progress []library.ReadingProgress) ReadingStats {
	readIndex := library.ReadIndex(progress)

	stats := ReadingStats{
		Total:             len(books),
		ByType:            make(map[library.BookType]TypeStats, len(statTypes)),
		RecentlyCompleted: make([]CompletedBook, 0),
	}
	for _, bookType := range statTypes {
		stats.ByType[bookType] = TypeStats{}
	}

	for _, book := range books {
		entry, tracked := readIndex[book.ID]
		isRead := tracked && entry.IsRead

		if isRead {
			stats.Read++
		}

		if typeStats, counted := stats.ByType[book.Type]; counted {
			typeStats.Total++
			if isRead {
				typeStats.Read++
			}
			stats.ByType[book.Type] = typeStats
		}

		if isRead && entry.CompletedAt != nil {
			stats.RecentlyCompleted = append(stats.RecentlyCompleted, CompletedBook{
				ID:          book.ID,
				Title:       book.Title,
				CompletedAt: *entry.CompletedAt,
				CoverURL:    book.CoverURL,
				Type:        book.Type,
			})
		}
	}

	stats.Unread = stats.Total - stats.Read
	stats.ReadPercentage = percentage(stats.Read, stats.Total)

	slices.SortStableFunc(stats.RecentlyCompleted, func(a, b CompletedBook) int {
		return b.CompletedAt.Compare(a.CompletedAt)
	})
	if len(stats.RecentlyCompleted) > recentlyCompletedLimit {
		stats.RecentlyCompleted = stats.RecentlyCompleted[:recentlyCompletedLimit]
	}

	return stats
}
