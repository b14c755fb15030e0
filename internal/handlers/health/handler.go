package health

import (
	"net/http"
	"pms/infras/postgres"
	"pms/shared/cache"
	"pms/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	db    *postgres.Connection
	cache cache.RedisCache
}

func New(db *postgres.Connection, redisCache cache.RedisCache) Handler {
	return Handler{
		db:    db,
		cache: redisCache,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/health", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Health)
	})
}

// Health reports whether the service and its backing stores are reachable.
// @Summary Health check
// @Description Verify database and cache connectivity.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service healthy"
// @Failure 503 {object} response.Message
// @Router /v1/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := handler.db.Write.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed on postgres")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.cache.Ping(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed on redis")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "ok")
}
