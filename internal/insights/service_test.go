// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package insights_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfmark/internal/insights"
	"github.com/taibuivan/shelfmark/internal/library"
	"github.com/taibuivan/shelfmark/internal/platform/metrics"
)

type fakeSource struct {
	books    []library.Book
	progress []library.ReadingProgress
	err      error
	calls    int
	onList   func()
}

func (source *fakeSource) ListBooks(context context.Context, filter library.Filter) ([]library.Book, error) {
	source.calls++
	books := source.books
	if source.onList != nil {
		source.onList()
	}
	return books, source.err
}

func (source *fakeSource) ListProgress(context context.Context) ([]library.ReadingProgress, error) {
	return source.progress, nil
}

type fakeCache struct {
	entries       map[string]*insights.CollectionInsights
	generation    int64
	generationErr error
	getErr        error
	purged        int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*insights.CollectionInsights)}
}

func (cache *fakeCache) Generation(context context.Context) (int64, error) {
	return cache.generation, cache.generationErr
}

func (cache *fakeCache) Get(context context.Context, key string) (*insights.CollectionInsights, bool, error) {
	if cache.getErr != nil {
		return nil, false, cache.getErr
	}
	value, ok := cache.entries[key]
	return value, ok, nil
}

func (cache *fakeCache) Set(context context.Context, key string, value *insights.CollectionInsights) error {
	cache.entries[key] = value
	return nil
}

func (cache *fakeCache) Purge(context context.Context) error {
	cache.purged++
	cache.generation++
	clear(cache.entries)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func berserkSource() *fakeSource {
	return &fakeSource{
		books: []library.Book{
			book("b1", "Berserk 1", "Berserk", "1", library.TypeManga),
			book("b2", "Berserk 2", "Berserk", "2", library.TypeManga),
			book("b4", "Berserk 4", "Berserk", "4", library.TypeManga),
			book("c1", "Year One", "Batman", "#404", library.TypeComic),
		},
		progress: read("b1", "b2"),
	}
}

func TestService_Collection_WithoutCache(t *testing.T) {
	source := berserkSource()
	service := insights.NewService(source, nil, discardLogger())

	first, err := service.Collection(context.Background(), nil)
	require.NoError(t, err)
	_, err = service.Collection(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls)
	assert.Equal(t, 4, first.Stats.Total)
	assert.Equal(t, []string{"Batman"}, seriesNames(first.CompleteSeries))
	assert.Equal(t, []string{"Berserk"}, seriesNames(first.IncompleteSeries))
}

/*
TestService_Collection_CachesPerType computes once per book type key and
serves repeated requests from the cache.
*/
func TestService_Collection_CachesPerType(t *testing.T) {
	source := berserkSource()
	cache := newFakeCache()
	service := insights.NewService(source, cache, discardLogger())
	manga := library.TypeManga

	hitsBefore := testutil.ToFloat64(metrics.InsightsCacheHits)
	missesBefore := testutil.ToFloat64(metrics.InsightsCacheMisses)

	_, err := service.Collection(context.Background(), &manga)
	require.NoError(t, err)
	cached, err := service.Collection(context.Background(), &manga)
	require.NoError(t, err)
	_, err = service.Collection(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls)
	assert.Contains(t, cache.entries, "0:MANGA")
	assert.Contains(t, cache.entries, "0:all")
	assert.Empty(t, cached.CompleteSeries)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.InsightsCacheHits)-hitsBefore)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.InsightsCacheMisses)-missesBefore)
}

func TestService_Collection_CacheReadFailureFallsBack(t *testing.T) {
	source := berserkSource()
	cache := newFakeCache()
	cache.getErr = errors.New("redis unavailable")
	service := insights.NewService(source, cache, discardLogger())

	got, err := service.Collection(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 4, got.Stats.Total)
	assert.Equal(t, 1, source.calls)
}

/*
TestService_Collection_WriteDuringCompute stores a result computed from data
read before a library write under the superseded generation, so the next
request recomputes instead of serving it.
*/
func TestService_Collection_WriteDuringCompute(t *testing.T) {
	source := berserkSource()
	cache := newFakeCache()
	service := insights.NewService(source, cache, discardLogger())

	source.onList = func() {
		source.books = append(source.books, book("b3", "Berserk 3", "Berserk", "3", library.TypeManga))
		service.Invalidate(context.Background())
	}
	stale, err := service.Collection(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Berserk"}, seriesNames(stale.IncompleteSeries))

	source.onList = nil
	fresh, err := service.Collection(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls)
	assert.Equal(t, 5, fresh.Stats.Total)
	assert.ElementsMatch(t, []string{"Batman", "Berserk"}, seriesNames(fresh.CompleteSeries))
	assert.Contains(t, cache.entries, "1:all")
}

func TestService_Collection_GenerationFailureSkipsCache(t *testing.T) {
	source := berserkSource()
	cache := newFakeCache()
	cache.generationErr = errors.New("redis unavailable")
	service := insights.NewService(source, cache, discardLogger())

	_, err := service.Collection(context.Background(), nil)
	require.NoError(t, err)
	_, err = service.Collection(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls)
	assert.Empty(t, cache.entries)
}

func TestService_Collection_SourceError(t *testing.T) {
	source := &fakeSource{err: errors.New("connection refused")}
	service := insights.NewService(source, newFakeCache(), discardLogger())

	_, err := service.Collection(context.Background(), nil)

	require.Error(t, err)
}

func TestService_Invalidate(t *testing.T) {
	source := berserkSource()
	cache := newFakeCache()
	service := insights.NewService(source, cache, discardLogger())

	_, err := service.Collection(context.Background(), nil)
	require.NoError(t, err)

	service.Invalidate(context.Background())
	_, err = service.Collection(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.purged)
	assert.Equal(t, 2, source.calls)

	assert.NotPanics(t, func() {
		insights.NewService(source, nil, discardLogger()).Invalidate(context.Background())
	})
}

func TestHandler_GetInsights(t *testing.T) {
	handler := insights.NewHandler(insights.NewService(berserkSource(), nil, discardLogger()))

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantSeries []string
	}{
		{"all_types", "", http.StatusOK, []string{"Batman", "Berserk"}},
		{"manga_only", "?bookType=MANGA", http.StatusOK, []string{"Berserk"}},
		{"lowercase_type", "?bookType=comic", http.StatusOK, []string{"Batman"}},
		{"invalid_type", "?bookType=NOVEL", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			recorder := httptest.NewRecorder()

			handler.Routes().ServeHTTP(recorder, request)

			require.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus != http.StatusOK {
				assert.True(t, strings.Contains(recorder.Body.String(), "VALIDATION_ERROR"))
				return
			}

			var envelope struct {
				Data insights.CollectionInsights `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			assert.Equal(t, 4, envelope.Data.Stats.Total)

			names := append(seriesNames(envelope.Data.CompleteSeries), seriesNames(envelope.Data.IncompleteSeries)...)
			assert.Equal(t, tt.wantSeries, names)
		})
	}
}
