// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package insights_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfmark/internal/insights"
	"github.com/taibuivan/shelfmark/internal/library"
)

func book(id, title, series, volume string, bookType library.BookType) library.Book {
	b := library.Book{ID: id, Title: title, Type: bookType}
	if series != "" {
		b.Series = ptr(series)
	}
	if volume != "" {
		b.Volume = ptr(volume)
	}
	return b
}

func read(ids ...string) []library.ReadingProgress {
	progress := make([]library.ReadingProgress, 0, len(ids))
	for _, id := range ids {
		progress = append(progress, library.ReadingProgress{ItemID: id, IsRead: true})
	}
	return progress
}

func seriesNames(series []insights.SeriesInsight) []string {
	names := make([]string, 0, len(series))
	for _, s := range series {
		names = append(names, s.SeriesName)
	}
	return names
}

/*
TestComputeSeriesInsights_GapMakesSeriesIncomplete owns Berserk 1, 2 and 4
and has read two of them.
*/
func TestComputeSeriesInsights_GapMakesSeriesIncomplete(t *testing.T) {
	books := []library.Book{
		book("b4", "Berserk 4", "Berserk", "4", library.TypeManga),
		book("b1", "Berserk 1", "Berserk", "1", library.TypeManga),
		book("b2", "Berserk 2", "Berserk", "2", library.TypeManga),
	}

	got := insights.ComputeSeriesInsights(books, read("b1", "b2"), nil)

	require.Empty(t, got.CompleteSeries)
	require.Len(t, got.IncompleteSeries, 1)

	berserk := got.IncompleteSeries[0]
	assert.Equal(t, "Berserk", berserk.SeriesName)
	assert.Equal(t, 3, berserk.TotalVolumes)
	assert.Equal(t, 3, berserk.OwnedVolumes)
	assert.Equal(t, 2, berserk.ReadVolumes)
	assert.Equal(t, 67, berserk.CompletionPercentage)
	assert.False(t, berserk.IsComplete)
	assert.Equal(t, []string{"3"}, berserk.MissingVolumes)

	ids := make([]string, 0, len(berserk.Items))
	for _, item := range berserk.Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"b1", "b2", "b4"}, ids)
	assert.True(t, berserk.Items[0].IsRead)
	assert.False(t, berserk.Items[2].IsRead)
}

func TestComputeSeriesInsights_ContiguousSeriesIsComplete(t *testing.T) {
	books := []library.Book{
		book("m1", "Monster 1", "Monster", "Vol. 1", library.TypeManga),
		book("m2", "Monster 2", "Monster", "Vol. 2", library.TypeManga),
	}

	got := insights.ComputeSeriesInsights(books, nil, nil)

	require.Len(t, got.CompleteSeries, 1)
	assert.True(t, got.CompleteSeries[0].IsComplete)
	assert.Equal(t, 0, got.CompleteSeries[0].CompletionPercentage)
	assert.Empty(t, got.CompleteSeries[0].MissingVolumes)
	assert.Empty(t, got.IncompleteSeries)
}

/*
TestComputeSeriesInsights_WithoutOrdinals falls back to read state when no
volume label can be parsed.
*/
func TestComputeSeriesInsights_WithoutOrdinals(t *testing.T) {
	books := []library.Book{
		book("s1", "Saga Deluxe", "Saga", "Deluxe", library.TypeComic),
		book("s2", "Saga Omnibus", "Saga", "", library.TypeComic),
		book("w1", "Watchmen", "Watchmen", "", library.TypeGraphicNovel),
	}

	got := insights.ComputeSeriesInsights(books, read("w1", "s1"), nil)

	assert.Equal(t, []string{"Watchmen"}, seriesNames(got.CompleteSeries))
	assert.Equal(t, []string{"Saga"}, seriesNames(got.IncompleteSeries))
	assert.Equal(t, []string{}, got.IncompleteSeries[0].MissingVolumes)
	assert.Equal(t, 50, got.IncompleteSeries[0].CompletionPercentage)
}

func TestComputeSeriesInsights_IgnoresBooksWithoutSeries(t *testing.T) {
	books := []library.Book{
		book("a", "Maus", "", "", library.TypeGraphicNovel),
		book("b", "Blankets", "   ", "", library.TypeGraphicNovel),
	}

	got := insights.ComputeSeriesInsights(books, read("a"), nil)

	assert.NotNil(t, got.CompleteSeries)
	assert.NotNil(t, got.IncompleteSeries)
	assert.Empty(t, got.CompleteSeries)
	assert.Empty(t, got.IncompleteSeries)
}

func TestComputeSeriesInsights_GroupsByTrimmedName(t *testing.T) {
	books := []library.Book{
		book("a", "Vagabond 1", " Vagabond ", "1", library.TypeManga),
		book("b", "Vagabond 2", "Vagabond", "2", library.TypeManga),
		book("c", "vagabond 3", "vagabond", "3", library.TypeManga),
	}

	got := insights.ComputeSeriesInsights(books, nil, nil)

	assert.ElementsMatch(t, []string{"Vagabond", "vagabond"}, seriesNames(got.CompleteSeries))
	for _, s := range got.CompleteSeries {
		if s.SeriesName == "Vagabond" {
			assert.Equal(t, 2, s.OwnedVolumes)
		}
	}
}

func TestComputeSeriesInsights_FiltersByType(t *testing.T) {
	books := []library.Book{
		book("m", "Berserk 1", "Berserk", "1", library.TypeManga),
		book("c", "Batman 404", "Batman", "#404", library.TypeComic),
	}
	manga := library.TypeManga

	got := insights.ComputeSeriesInsights(books, nil, &manga)

	assert.Equal(t, []string{"Berserk"}, seriesNames(got.CompleteSeries))
}

/*
TestComputeSeriesInsights_Ordering sorts by completion descending and breaks
ties by name ascending.
*/
func TestComputeSeriesInsights_Ordering(t *testing.T) {
	books := []library.Book{
		book("z1", "Zetman 1", "Zetman", "1", library.TypeManga),
		book("a1", "Akira 1", "Akira", "1", library.TypeManga),
		book("p1", "Pluto 1", "Pluto", "1", library.TypeManga),
		book("p2", "Pluto 2", "Pluto", "2", library.TypeManga),
	}

	got := insights.ComputeSeriesInsights(books, read("z1", "p1"), nil)

	assert.Equal(t, []string{"Zetman", "Pluto", "Akira"}, seriesNames(got.CompleteSeries))
}

func TestComputeSeriesInsights_UnparseableVolumesSortFirst(t *testing.T) {
	books := []library.Book{
		book("v2", "Akira 2", "Akira", "2", library.TypeManga),
		book("box", "Akira Box", "Akira", "Box Set", library.TypeManga),
		book("v1", "Akira 1", "Akira", "1", library.TypeManga),
	}

	got := insights.ComputeSeriesInsights(books, nil, nil)

	require.Len(t, got.CompleteSeries, 1)
	items := got.CompleteSeries[0].Items
	assert.Equal(t, "box", items[0].ID)
	assert.Nil(t, items[0].VolumeNumber)
	assert.Equal(t, "v1", items[1].ID)
	assert.Equal(t, "v2", items[2].ID)
}

func TestComputeSeriesInsights_Idempotent(t *testing.T) {
	completed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	books := []library.Book{
		book("b4", "Berserk 4", "Berserk", "4", library.TypeManga),
		book("b1", "Berserk 1", "Berserk", "1", library.TypeManga),
		book("s1", "Saga 1", "Saga", "1", library.TypeComic),
	}
	progress := []library.ReadingProgress{{ItemID: "b1", IsRead: true, CompletedAt: &completed}}

	first := insights.ComputeSeriesInsights(books, progress, nil)
	second := insights.ComputeSeriesInsights(books, progress, nil)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("series insights differ between runs (-first +second):\n%s", diff)
	}
}
