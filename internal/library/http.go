package library

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/shelfmark/internal/platform/apperr"
	requestutil "github.com/taibuivan/shelfmark/internal/platform/request"
	"github.com/taibuivan/shelfmark/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// BookRoutes mounts the item endpoints backing the collection.
func (handler *Handler) BookRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listBooks)
	router.Post("/", handler.createBook)
	router.Get("/{id}", handler.getBook)
	router.Delete("/{id}", handler.deleteBook)
	return router
}

// ProgressRoutes mounts the reading progress ledger endpoints.
func (handler *Handler) ProgressRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listProgress)
	router.Put("/{itemId}", handler.putProgress)
	return router
}

type createBookRequest struct {
	Title    string  `json:"title"`
	Series   *string `json:"series"`
	Volume   *string `json:"volume"`
	Type     string  `json:"type"`
	CoverURL *string `json:"coverUrl"`
}

type progressRequest struct {
	IsRead       bool    `json:"isRead"`
	ReadingPath  *string `json:"readingPath"`
	CurrentPhase *string `json:"currentPhase"`
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	bookType, err := BookTypeQuery(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Type:   bookType,
		Series: strings.TrimSpace(request.URL.Query().Get("series")),
	}

	books, err := handler.service.ListBooks(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	book, err := handler.service.GetBook(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input createBookRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book := &Book{
		Title:    input.Title,
		Series:   input.Series,
		Volume:   input.Volume,
		Type:     BookType(strings.ToUpper(strings.TrimSpace(input.Type))),
		CoverURL: input.CoverURL,
	}

	if err := handler.service.CreateBook(request.Context(), book); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, book)
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteBook(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listProgress(writer http.ResponseWriter, request *http.Request) {
	progress, err := handler.service.ListProgress(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, progress)
}

func (handler *Handler) putProgress(writer http.ResponseWriter, request *http.Request) {
	var input progressRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	progress := &ReadingProgress{
		ItemID:       requestutil.ID(request, "itemId"),
		IsRead:       input.IsRead,
		ReadingPath:  input.ReadingPath,
		CurrentPhase: input.CurrentPhase,
	}

	if err := handler.service.SetProgress(request.Context(), progress); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, progress)
}

// BookTypeQuery reads the optional "bookType" query parameter. An absent or
// empty value yields nil; an unknown value yields a VALIDATION_ERROR.
func BookTypeQuery(request *http.Request) (*BookType, error) {
	raw := request.URL.Query().Get(FieldBookType)
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	bookType, ok := ParseBookType(raw)
	if !ok {
		return nil, apperr.ValidationError("Invalid bookType", apperr.FieldError{
			Field:   FieldBookType,
			Message: "Must be one of: " + strings.Join(BookTypeNames(), ", "),
		})
	}
	return &bookType, nil
}
