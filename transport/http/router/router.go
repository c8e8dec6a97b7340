package router

import (
	"github.com/go-chi/chi/v5"

	"boxes/internal/handlers/appointment"
	"boxes/internal/handlers/workshop"
)

type DomainHandlers struct {
	Appointment appointment.Handler
	Workshop    workshop.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Workshop.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
