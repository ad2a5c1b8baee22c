package library

import "context"

// Repository is the storage contract for books and the reading progress ledger.
type Repository interface {
	ListBooks(context context.Context, filter Filter) ([]Book, error)
	GetBook(context context.Context, id string) (*Book, error)
	CreateBook(context context.Context, book *Book) error
	DeleteBook(context context.Context, id string) error

	ListProgress(context context.Context) ([]ReadingProgress, error)
	UpsertProgress(context context.Context, progress *ReadingProgress) error
}
