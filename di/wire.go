//go:build wireinject
// +build wireinject

package di

import (
	"adspot/config"
	"adspot/infras/jwt"
	"adspot/infras/kafka"
	"adspot/infras/otel"
	"adspot/infras/postgres"
	"adspot/infras/redis"
	"adspot/internal/events"
	"adspot/permissions"
	"adspot/shared/cache"
	"adspot/transport/http"
	"adspot/transport/http/middleware"
	"adspot/transport/http/router"

	"github.com/google/wire"

	authService "adspot/internal/domains/auth/service"
	availabilityRepository "adspot/internal/domains/availability/repository"
	availabilityService "adspot/internal/domains/availability/service"
	bookingRepository "adspot/internal/domains/booking/repository"
	bookingService "adspot/internal/domains/booking/service"
	spaceRepository "adspot/internal/domains/space/repository"
	spaceService "adspot/internal/domains/space/service"
	userRepository "adspot/internal/domains/user/repository"
	userService "adspot/internal/domains/user/service"
	authHandler "adspot/internal/handlers/auth"
	availabilityHandler "adspot/internal/handlers/availability"
	bookingHandler "adspot/internal/handlers/booking"
	spaceHandler "adspot/internal/handlers/space"
	userHandler "adspot/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var spaceDomain = wire.NewSet(
	spaceRepository.New,
	spaceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	spaceDomain,
	bookingDomain,
	availabilityDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	spaceHandler.New,
	bookingHandler.New,
	availabilityHandler.New,
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
