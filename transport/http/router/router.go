package router

import (
	_ "pms/docs"
	"pms/internal/handlers/booking"
	"pms/internal/handlers/extra"
	"pms/internal/handlers/guest"
	"pms/internal/handlers/health"
	"pms/internal/handlers/room"
	"pms/internal/handlers/stats"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Room    room.Handler
	Guest   guest.Handler
	Extra   extra.Handler
	Booking booking.Handler
	Stats   stats.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Extra.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Stats.Router(routerGroup)
	})

	router.Get("/swagger/*", httpSwagger.WrapHandler)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
