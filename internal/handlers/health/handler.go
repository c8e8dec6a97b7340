package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"boxes/transport/http/response"
)

// Handler answers liveness probes. The ready probe is injected by the server
// so responses flip to unhealthy during shutdown.
type Handler struct {
	ready func() bool
}

func New(ready func() bool) Handler {
	return Handler{
		ready: ready,
	}
}

func (h *Handler) Router(router chi.Router) {
	router.Get("/health", h.Health)
}

func (h *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	if h.ready != nil && !h.ready() {
		response.WithUnhealthy(writer)

		return
	}

	response.WithMessage(writer, http.StatusOK, "OK")
}
