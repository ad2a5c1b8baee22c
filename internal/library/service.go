package library

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/taibuivan/shelfmark/internal/platform/apperr"
	"github.com/taibuivan/shelfmark/internal/platform/validate"
	"github.com/taibuivan/shelfmark/pkg/uuid"
)

// ChangeListener is invoked after a successful write to the collection.
type ChangeListener func(context context.Context)

type Service struct {
	repo   Repository
	logger *slog.Logger

	mu        sync.RWMutex
	listeners []ChangeListener
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// OnChange registers a listener notified after books or progress are written.
func (service *Service) OnChange(listener ChangeListener) {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.listeners = append(service.listeners, listener)
}

func (service *Service) ListBooks(context context.Context, filter Filter) ([]Book, error) {
	return service.repo.ListBooks(context, filter)
}

func (service *Service) GetBook(context context.Context, id string) (*Book, error) {
	book, err := service.repo.GetBook(context, id)
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return nil, apperr.NotFound("Book")
		}
		return nil, err
	}
	return book, nil
}

func (service *Service) CreateBook(context context.Context, book *Book) error {
	book.Title = strings.TrimSpace(book.Title)
	book.Series = trimmedOrNil(book.Series)
	book.Volume = trimmedOrNil(book.Volume)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, book.Title).MaxLen(FieldTitle, book.Title, 500)
	validator.OneOf(FieldType, string(book.Type), BookTypeNames()...)
	if book.Series != nil {
		validator.MaxLen(FieldSeries, *book.Series, 300)
	}
	if book.Volume != nil {
		validator.MaxLen(FieldVolume, *book.Volume, 50)
		validator.Custom(FieldVolume, volumeTooLarge(*book.Volume),
			"Volume number must not exceed "+strconv.Itoa(MaxVolumeOrdinal))
	}
	if book.CoverURL != nil {
		validator.URL(FieldCoverURL, *book.CoverURL)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	book.ID = uuid.New()
	if err := service.repo.CreateBook(context, book); err != nil {
		return err
	}

	service.logger.Info("book_created", slog.String("book_id", book.ID), slog.String("type", string(book.Type)))
	service.notify(context)
	return nil
}

func (service *Service) DeleteBook(context context.Context, id string) error {
	if err := service.repo.DeleteBook(context, id); err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return apperr.NotFound("Book")
		}
		return err
	}

	service.logger.Warn("book_deleted", slog.String("book_id", id))
	service.notify(context)
	return nil
}

func (service *Service) ListProgress(context context.Context) ([]ReadingProgress, error) {
	return service.repo.ListProgress(context)
}

// SetProgress records the read state of an existing book.
func (service *Service) SetProgress(context context.Context, progress *ReadingProgress) error {
	if _, err := service.GetBook(context, progress.ItemID); err != nil {
		return err
	}

	progress.ReadingPath = trimmedOrNil(progress.ReadingPath)
	progress.CurrentPhase = trimmedOrNil(progress.CurrentPhase)

	if err := service.repo.UpsertProgress(context, progress); err != nil {
		return err
	}

	service.logger.Info("reading_progress_updated",
		slog.String("item_id", progress.ItemID),
		slog.Bool("is_read", progress.IsRead),
	)
	service.notify(context)
	return nil
}

func (service *Service) notify(context context.Context) {
	service.mu.RLock()
	listeners := append([]ChangeListener(nil), service.listeners...)
	service.mu.RUnlock()

	for _, listener := range listeners {
		listener(context)
	}
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
