// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package recommend_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfmark/internal/library"
	"github.com/taibuivan/shelfmark/internal/platform/apperr"
	"github.com/taibuivan/shelfmark/internal/recommend"
)

type fakeSource struct {
	books    []library.Book
	progress []library.ReadingProgress
}

func (source *fakeSource) ListBooks(context context.Context, filter library.Filter) ([]library.Book, error) {
	return source.books, nil
}

func (source *fakeSource) ListProgress(context context.Context) ([]library.ReadingProgress, error) {
	return source.progress, nil
}

func newTestService(t *testing.T) *recommend.Service {
	t.Helper()

	catalog, err := recommend.LoadCatalog("")
	require.NoError(t, err)

	source := &fakeSource{
		books: []library.Book{
			{ID: "maus", Title: "Maus", Type: library.TypeGraphicNovel},
			{ID: "watchmen", Title: "Watchmen", Type: library.TypeGraphicNovel},
		},
		progress: []library.ReadingProgress{{ItemID: "maus", IsRead: true}},
	}
	return recommend.NewService(catalog, source, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_GetPath_NotFound(t *testing.T) {
	service := newTestService(t)

	_, err := service.GetPath("missing")

	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestService_Progress(t *testing.T) {
	service := newTestService(t)

	got, err := service.Progress(context.Background(), "graphic-novel-landmarks")
	require.NoError(t, err)

	assert.Equal(t, 1, got.PhaseProgress["memoir"].Read)
	assert.Equal(t, 1, got.PhaseProgress["fiction"].Owned)
	require.NotNil(t, got.NextToRead)
	assert.Equal(t, "Watchmen", got.NextToRead.Recommendation.Title)
	assert.Equal(t, "fiction", got.NextToRead.Phase.ID)
}

func TestHandler_Routes(t *testing.T) {
	router := recommend.NewHandler(newTestService(t)).Routes()

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"list_all", "/", http.StatusOK, `"manga-essentials"`},
		{"list_filtered", "/?bookType=COMIC", http.StatusOK, `"batman-foundations"`},
		{"list_invalid_type", "/?bookType=BD", http.StatusBadRequest, `"VALIDATION_ERROR"`},
		{"get_path", "/manga-essentials", http.StatusOK, `"Deeper Cuts"`},
		{"get_missing_path", "/nope", http.StatusNotFound, `"NOT_FOUND"`},
		{"progress", "/graphic-novel-landmarks/progress", http.StatusOK, `"nextToRead"`},
		{"progress_missing_path", "/nope/progress", http.StatusNotFound, `"NOT_FOUND"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_ListFilteredOnlyReturnsType(t *testing.T) {
	router := recommend.NewHandler(newTestService(t)).Routes()
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?bookType=manga", nil))

	var envelope struct {
		Data []recommend.Path `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, []string{"manga-essentials"}, pathIDs(envelope.Data))
}
