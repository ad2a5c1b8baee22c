package recommend

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/shelfmark/internal/library"
	requestutil "github.com/taibuivan/shelfmark/internal/platform/request"
	"github.com/taibuivan/shelfmark/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the reading path catalog (at /recommendations).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listPaths)
	router.Get("/{pathID}", handler.getPath)
	router.Get("/{pathID}/progress", handler.getProgress)
	return router
}

func (handler *Handler) listPaths(writer http.ResponseWriter, request *http.Request) {
	bookType, err := library.BookTypeQuery(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.service.ListPaths(bookType))
}

func (handler *Handler) getPath(writer http.ResponseWriter, request *http.Request) {
	path, err := handler.service.GetPath(requestutil.ID(request, "pathID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, path)
}

func (handler *Handler) getProgress(writer http.ResponseWriter, request *http.Request) {
	progress, err := handler.service.Progress(request.Context(), requestutil.ID(request, "pathID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, progress)
}
