//go:build wireinject
// +build wireinject

package di

import (
	"reserva/config"
	"reserva/infras/kafka"
	"reserva/infras/otel"
	"reserva/infras/postgres"
	"reserva/infras/redis"
	"reserva/shared/cache"
	"reserva/transport/http"
	"reserva/transport/http/middleware"
	"reserva/transport/http/router"

	bookingRepository "reserva/internal/domains/booking/repository"
	bookingService "reserva/internal/domains/booking/service"
	customerRepository "reserva/internal/domains/customer/repository"
	customerService "reserva/internal/domains/customer/service"
	resourceRepository "reserva/internal/domains/resource/repository"
	resourceService "reserva/internal/domains/resource/service"
	tariffRepository "reserva/internal/domains/tariff/repository"
	tariffService "reserva/internal/domains/tariff/service"
	tenantRepository "reserva/internal/domains/tenant/repository"

	bookingHandler "reserva/internal/handlers/booking"
	customerHandler "reserva/internal/handlers/customer"
	resourceHandler "reserva/internal/handlers/resource"
	tariffHandler "reserva/internal/handlers/tariff"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var tenantDomain = wire.NewSet(
	tenantRepository.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var resourceDomain = wire.NewSet(
	resourceRepository.New,
	resourceRepository.NewResourceType,
	resourceRepository.NewResourceCategory,
	resourceRepository.NewResourceBlock,
	resourceService.New,
)

var tariffDomain = wire.NewSet(
	tariffRepository.New,
	tariffService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewBookingResource,
	bookingRepository.NewPayment,
	bookingService.New,
)

var domains = wire.NewSet(
	tenantDomain,
	customerDomain,
	resourceDomain,
	tariffDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	resourceHandler.New,
	tariffHandler.New,
	bookingHandler.New,
	customerHandler.New,
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
