package recommend

import (
	"context"
	"log/slog"

	"github.com/taibuivan/shelfmark/internal/library"
	"github.com/taibuivan/shelfmark/internal/platform/apperr"
	"github.com/taibuivan/shelfmark/internal/platform/ctxutil"
)

// Source supplies the collection used for progress tracking.
type Source interface {
	ListBooks(context context.Context, filter library.Filter) ([]library.Book, error)
	ListProgress(context context.Context) ([]library.ReadingProgress, error)
}

type Service struct {
	catalog *Catalog
	source  Source
	logger  *slog.Logger
}

func NewService(catalog *Catalog, source Source, logger *slog.Logger) *Service {
	return &Service{
		catalog: catalog,
		source:  source,
		logger:  logger,
	}
}

func (service *Service) ListPaths(bookType *library.BookType) []Path {
	return service.catalog.Paths(bookType)
}

func (service *Service) GetPath(id string) (*Path, error) {
	path, ok := service.catalog.Path(id)
	if !ok {
		return nil, apperr.NotFound("Reading path")
	}
	return &path, nil
}

// Progress computes the collection's progress along the path with the given id.
func (service *Service) Progress(context context.Context, id string) (*PathProgress, error) {
	path, err := service.GetPath(id)
	if err != nil {
		return nil, err
	}

	books, err := service.source.ListBooks(context, library.Filter{})
	if err != nil {
		return nil, err
	}
	progress, err := service.source.ListProgress(context)
	if err != nil {
		return nil, err
	}

	result := ComputePathProgress(*path, OwnedItems(books, progress))

	ctxutil.GetLogger(context).Debug("path_progress_computed",
		slog.String("path_id", path.ID),
		slog.Int("owned", result.Overall.Owned),
		slog.Int("read", result.Overall.Read),
		slog.Bool("has_next", result.NextToRead != nil),
	)

	return &result, nil
}
