//go:build wireinject
// +build wireinject

package di

import (
	"zeit/config"
	"zeit/infras/otel"
	worldtimeService "zeit/internal/domains/worldtime/service"
	worldtimeHandler "zeit/internal/handlers/worldtime"
	"zeit/shared/cache"
	"zeit/shared/clock"
	"zeit/shared/ratelimit"
	"zeit/transport/http"
	"zeit/transport/http/middleware"
	"zeit/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	clock.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewMemoryCache,
	ratelimit.NewMemoryLimiter,
)

var worldtimeDomain = wire.NewSet(
	worldtimeService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	worldtimeHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		worldtimeDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
