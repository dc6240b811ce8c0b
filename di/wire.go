//go:build wireinject
// +build wireinject

package di

import (
	"wander/config"
	"wander/infras/kafka"
	"wander/infras/otel"
	"wander/infras/postgres"
	"wander/infras/redis"
	"wander/infras/s3"
	bookingHandler "wander/internal/handlers/booking"
	experienceHandler "wander/internal/handlers/experience"
	slotHandler "wander/internal/handlers/slot"
	userHandler "wander/internal/handlers/user"
	"wander/shared/cache"
	"wander/transport/http"
	"wander/transport/http/middleware"
	"wander/transport/http/router"

	bookingRepository "wander/internal/domains/booking/repository"
	bookingService "wander/internal/domains/booking/service"
	experienceRepository "wander/internal/domains/experience/repository"
	experienceService "wander/internal/domains/experience/service"
	slotRepository "wander/internal/domains/slot/repository"
	slotService "wander/internal/domains/slot/service"
	userRepository "wander/internal/domains/user/repository"
	userService "wander/internal/domains/user/service"

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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var experienceDomain = wire.NewSet(
	experienceRepository.New,
	experienceService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var slotDomain = wire.NewSet(
	slotRepository.New,
	slotService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	experienceDomain,
	userDomain,
	slotDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	experienceHandler.New,
	userHandler.New,
	slotHandler.New,
	bookingHandler.New,
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
