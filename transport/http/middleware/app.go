package middleware

import (
	"context"
	"net/http"
	"pms/config"
	"pms/infras/otel"
	"pms/shared/cache"
	"pms/shared/constant"
	"pms/shared/failure"
	"pms/transport/http/response"
	"time"

	"github.com/go-chi/cors"
)

// App bundles the cross-cutting middlewares applied to every route.
type App interface {
	CORS() func(http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
	APIKey() func(http.Handler) http.Handler
	Tracing() func(http.Handler) http.Handler
}

type appMiddleware struct {
	config *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func NewAppMiddleware(cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) App {
	return &appMiddleware{
		config: cfg,
		cache:  redisCache,
		otel:   otl,
	}
}

func (a *appMiddleware) CORS() func(http.Handler) http.Handler {
	if !a.config.App.CORS.Enable {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   a.config.App.CORS.AllowedOrigins,
		AllowedMethods:   a.config.App.CORS.AllowedMethods,
		AllowedHeaders:   a.config.App.CORS.AllowedHeaders,
		AllowCredentials: a.config.App.CORS.AllowCredentials,
		MaxAge:           a.config.App.CORS.MaxAgeSeconds,
	})
}

// APIKey authenticates internal callers through the X-API-Key header. A
// request carrying the right key acts as the internal operator; a wrong key
// is rejected; no key leaves the request anonymous for the public surface.
func (a *appMiddleware) APIKey() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			_, scope := a.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

			apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

			if apiKey == constant.Empty {
				scope.SetAttribute("http.source", "client")
				scope.End()
				next.ServeHTTP(writer, request)

				return
			}

			scope.SetAttribute("http.source", "internal")

			if apiKey != a.config.App.APIKey {
				err := failure.ForbiddenError

				response.WithError(writer, err)

				scope.TraceError(err)
				scope.End()

				return
			}

			ctx = context.WithValue(ctx, constant.ContextKeyInternal, true)
			ctx = context.WithValue(ctx, constant.ContextKeyUserID, "internal")

			scope.End()
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// Tracing opens a span per request and records basic HTTP attributes.
func (a *appMiddleware) Tracing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx, scope := a.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "http.request")
			defer scope.End()

			start := time.Now()

			scope.SetAttributes(map[string]any{
				"http.method": request.Method,
				"http.path":   request.URL.Path,
			})

			next.ServeHTTP(writer, request.WithContext(ctx))

			scope.SetAttribute("http.duration_ms", time.Since(start).Milliseconds())
		})
	}
}
