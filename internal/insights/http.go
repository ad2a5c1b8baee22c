package insights

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/shelfmark/internal/library"
	"github.com/taibuivan/shelfmark/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes exposes GET / (mounted at /insights).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getInsights)
	return router
}

func (handler *Handler) getInsights(writer http.ResponseWriter, request *http.Request) {
	bookType, err := library.BookTypeQuery(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Collection(request.Context(), bookType)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
