package workshop

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"boxes/infras/otel"
	"boxes/internal/domains/workshop/service"
	"boxes/shared/constant"
	"boxes/transport/http/response"
)

type Handler struct {
	query     service.Query
	workshops service.Cached
	otel      otel.Otel
}

func New(query service.Query, workshops service.Cached, otel otel.Otel) Handler {
	return Handler{
		query:     query,
		workshops: workshops,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/workshops", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWorkshops)
		routerGroup.Delete("/cache", handler.InvalidateCache)
	})
}

// GetWorkshops lists the bookable workshops known to the external provider.
func (handler *Handler) GetWorkshops(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkshops")
	defer scope.End()

	workshops, err := handler.query.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get workshops")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, workshops)
}

// InvalidateCache drops the cached workshop snapshot so the next read hits the
// provider again.
func (handler *Handler) InvalidateCache(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InvalidateCache")
	defer scope.End()

	if err := handler.workshops.Invalidate(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to invalidate workshop cache")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Workshop cache invalidated")
}
