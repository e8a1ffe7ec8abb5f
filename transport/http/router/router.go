package router

import (
	"zeit/config"
	"zeit/internal/handlers/worldtime"
	"zeit/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	WorldTime worldtime.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	Config         *config.Config
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		Config:         cfg,
	}
}

func (r *Router) SetupRoutes(router chi.Router) {
	corsConfig := r.Config.App.CORS

	// CORS headers ride on every response, error responses included.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
		// Preflight falls through to the handler's own 204 route.
		OptionsPassthrough: true,
	}))

	router.Use(r.AppMiddleware.RequestID)
	router.Use(r.AppMiddleware.Tracing)

	r.DomainHandlers.WorldTime.Router(router)

	router.Get("/docs/*", httpSwagger.WrapHandler)
}
