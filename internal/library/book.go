// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package library owns the personal collection: book records and the reading
progress ledger that tracks which of them have been read.

Architecture:

  - Book and ReadingProgress are the read models consumed by the insights and
    recommendation engines.
  - Repository abstracts storage; PostgresRepository is the production backend.
  - Service validates writes and notifies listeners when the collection changes.
*/
package library

import (
	"strings"
	"time"
)

// # Book Types

// BookType classifies a book record.
type BookType string

const (
	TypeComic        BookType = "COMIC"
	TypeManga        BookType = "MANGA"
	TypeGraphicNovel BookType = "GRAPHIC_NOVEL"
	TypeOther        BookType = "OTHER"
)

// BookTypes lists every valid [BookType] in display order.
var BookTypes = []BookType{TypeComic, TypeManga, TypeGraphicNovel, TypeOther}

// BookTypeNames returns the string form of [BookTypes], used in validation messages.
func BookTypeNames() []string {
	names := make([]string, len(BookTypes))
	for i, bookType := range BookTypes {
		names[i] = string(bookType)
	}
	return names
}

// ParseBookType reports whether value names a known [BookType]. Matching is
// case-insensitive; surrounding whitespace is ignored.
func ParseBookType(value string) (BookType, bool) {
	candidate := BookType(strings.ToUpper(strings.TrimSpace(value)))
	for _, bookType := range BookTypes {
		if candidate == bookType {
			return bookType, true
		}
	}
	return "", false
}

// # Records

// Book is a single owned item of the collection.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Series    *string   `json:"series"`
	Volume    *string   `json:"volume"`
	Type      BookType  `json:"type"`
	CoverURL  *string   `json:"coverUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SeriesName returns the trimmed series name, or "" when the book belongs to no series.
func (book Book) SeriesName() string {
	if book.Series == nil {
		return ""
	}
	return strings.TrimSpace(*book.Series)
}

// ReadingProgress is the ledger row for one book. There is at most one per item.
type ReadingProgress struct {
	ItemID       string     `json:"itemId"`
	IsRead       bool       `json:"isRead"`
	CompletedAt  *time.Time `json:"completedAt"`
	ReadingPath  *string    `json:"readingPath,omitempty"`
	CurrentPhase *string    `json:"currentPhase,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ReadIndex maps item ids to their read flag. Items without a ledger row are absent,
// which callers treat as unread.
func ReadIndex(progress []ReadingProgress) map[string]ReadingProgress {
	index := make(map[string]ReadingProgress, len(progress))
	for _, entry := range progress {
		index[entry.ItemID] = entry
	}
	return index
}

// # Filters

// Filter narrows a book listing.
type Filter struct {
	Type   *BookType
	Series string
}

// Field names used in validation errors.
const (
	FieldTitle    = "title"
	FieldSeries   = "series"
	FieldVolume   = "volume"
	FieldType     = "type"
	FieldCoverURL = "coverUrl"
	FieldBookType = "bookType"
)
