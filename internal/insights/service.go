package insights

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/taibuivan/shelfmark/internal/library"
	"github.com/taibuivan/shelfmark/internal/platform/ctxutil"
	"github.com/taibuivan/shelfmark/internal/platform/metrics"
)

// Source supplies the raw collection.
type Source interface {
	ListBooks(context context.Context, filter library.Filter) ([]library.Book, error)
	ListProgress(context context.Context) ([]library.ReadingProgress, error)
}

type Service struct {
	source Source
	cache  Cache
	logger *slog.Logger
}

// NewService wires the insights service. cache may be nil to always recompute.
func NewService(source Source, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// Collection returns the insights of the whole collection, with the series
// breakdown restricted to bookType when it is non-nil.
//
// Cache keys carry the cache generation read before fetching. A library write
// that lands mid-computation advances the generation, so the result computed
// from the older data is stored under a key no later request reads.
// Cache failures are logged and never fail the request.
func (service *Service) Collection(context context.Context, bookType *library.BookType) (*CollectionInsights, error) {
	logger := ctxutil.GetLogger(context)

	key, cacheable := service.cacheKey(context, bookType)
	if cacheable {
		cached, found, err := service.cache.Get(context, key)
		switch {
		case err != nil:
			logger.Warn("insights_cache_read_failed", slog.Any("error", err))
		case found:
			metrics.InsightsCacheHits.Inc()
			return cached, nil
		}
		metrics.InsightsCacheMisses.Inc()
	}

	books, err := service.source.ListBooks(context, library.Filter{})
	if err != nil {
		return nil, err
	}
	progress, err := service.source.ListProgress(context)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := Compute(books, progress, bookType)
	metrics.InsightsComputeDuration.Observe(time.Since(start).Seconds())

	logger.Debug("insights_computed",
		slog.String("book_type", typeKey(bookType)),
		slog.Int("books", len(books)),
		slog.Int("complete_series", len(result.CompleteSeries)),
		slog.Int("incomplete_series", len(result.IncompleteSeries)),
	)

	if cacheable {
		if err := service.cache.Set(context, key, &result); err != nil {
			logger.Warn("insights_cache_write_failed", slog.Any("error", err))
		}
	}

	return &result, nil
}

// Invalidate drops cached insights. It is registered as a library change listener.
func (service *Service) Invalidate(context context.Context) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Purge(context); err != nil {
		service.logger.Error("insights_cache_purge_failed", slog.Any("error", err))
	}
}

// cacheKey builds "<generation>:<type>". It reports false when there is no
// cache or its generation cannot be read.
func (service *Service) cacheKey(context context.Context, bookType *library.BookType) (string, bool) {
	if service.cache == nil {
		return "", false
	}
	generation, err := service.cache.Generation(context)
	if err != nil {
		ctxutil.GetLogger(context).Warn("insights_cache_generation_failed", slog.Any("error", err))
		return "", false
	}
	return strconv.FormatInt(generation, 10) + ":" + typeKey(bookType), true
}

func typeKey(bookType *library.BookType) string {
	if bookType == nil {
		return "all"
	}
	return string(*bookType)
}
