// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package recommend serves curated reading paths and tracks how far the
collection has progressed along them.

A [Path] is an ordered list of phases, each an ordered list of recommended
titles. [MatchRecommendation] decides whether a recommendation is owned, and
[ComputePathProgress] derives per-phase counts and the next owned title that
has not been read yet. Both are pure functions.
*/
package recommend

import "github.com/taibuivan/shelfmark/internal/library"

// Entry is a single recommended title.
type Entry struct {
	Title     string `json:"title" yaml:"title"`
	Series    string `json:"series,omitempty" yaml:"series"`
	Author    string `json:"author,omitempty" yaml:"author"`
	Volumes   string `json:"volumes,omitempty" yaml:"volumes"`
	Issues    string `json:"issues,omitempty" yaml:"issues"`
	Priority  int    `json:"priority" yaml:"priority"`
	Tier      string `json:"tier,omitempty" yaml:"tier"`
	Reasoning string `json:"reasoning,omitempty" yaml:"reasoning"`
	Notes     string `json:"notes,omitempty" yaml:"notes"`
}

// VolumeRange is the free-text range used for volume alignment: Volumes when
// set, otherwise Issues.
func (entry Entry) VolumeRange() string {
	if entry.Volumes != "" {
		return entry.Volumes
	}
	return entry.Issues
}

// Phase is an ordered step of a reading path.
type Phase struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Description     string  `json:"description,omitempty" yaml:"description"`
	Recommendations []Entry `json:"recommendations" yaml:"recommendations"`
}

// Path is a curated reading order for one book type.
type Path struct {
	ID          string           `json:"id" yaml:"id"`
	BookType    library.BookType `json:"bookType" yaml:"bookType"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description"`
	Phases      []Phase          `json:"phases" yaml:"phases"`
}

// OwnedItem is a collection book joined with its read flag.
type OwnedItem struct {
	library.Book
	IsRead bool `json:"isRead"`
}

// OwnedItems left-joins books to the progress ledger; books without a row are unread.
func OwnedItems(books []library.Book, progress []library.ReadingProgress) []OwnedItem {
	readIndex := library.ReadIndex(progress)

	items := make([]OwnedItem, len(books))
	for i, book := range books {
		items[i] = OwnedItem{Book: book, IsRead: readIndex[book.ID].IsRead}
	}
	return items
}
