//go:build wireinject
// +build wireinject

package di

import (
	"boxes/config"
	"boxes/infras/otel"
	"boxes/shared/cache"
	"boxes/shared/uow"
	"boxes/transport/http"
	"boxes/transport/http/middleware"
	"boxes/transport/http/router"

	appointmentRepository "boxes/internal/domains/appointment/repository"
	appointmentService "boxes/internal/domains/appointment/service"
	workshopProvider "boxes/internal/domains/workshop/provider"
	workshopService "boxes/internal/domains/workshop/service"

	appointmentHandler "boxes/internal/handlers/appointment"
	workshopHandler "boxes/internal/handlers/workshop"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
	uow.NewInMemory,
)

var workshopDomain = wire.NewSet(
	workshopProvider.NewClient,
	workshopService.New,
	workshopService.NewCached,
	workshopService.NewQuery,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var domains = wire.NewSet(
	workshopDomain,
	appointmentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	appointmentHandler.New,
	workshopHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
