//go:build wireinject
// +build wireinject

package di

import (
	"pms/config"
	"pms/infras/kafka"
	"pms/infras/otel"
	"pms/infras/postgres"
	"pms/infras/redis"
	"pms/shared/cache"
	"pms/transport/http"
	"pms/transport/http/middleware"
	"pms/transport/http/router"

	bookingRepository "pms/internal/domains/booking/repository"
	bookingService "pms/internal/domains/booking/service"
	extraRepository "pms/internal/domains/extra/repository"
	extraService "pms/internal/domains/extra/service"
	guestRepository "pms/internal/domains/guest/repository"
	guestService "pms/internal/domains/guest/service"
	roomRepository "pms/internal/domains/room/repository"
	roomService "pms/internal/domains/room/service"
	statsService "pms/internal/domains/stats/service"

	bookingHandler "pms/internal/handlers/booking"
	extraHandler "pms/internal/handlers/extra"
	guestHandler "pms/internal/handlers/guest"
	healthHandler "pms/internal/handlers/health"
	roomHandler "pms/internal/handlers/room"
	statsHandler "pms/internal/handlers/stats"

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

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var extraDomain = wire.NewSet(
	extraRepository.New,
	extraService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewBookingExtra,
	bookingRepository.NewPayment,
	bookingRepository.NewTimeline,
	bookingService.New,
)

var statsDomain = wire.NewSet(
	statsService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	extraDomain,
	bookingDomain,
	statsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	guestHandler.New,
	extraHandler.New,
	bookingHandler.New,
	statsHandler.New,
	healthHandler.New,
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
