package worldtime

import (
	"net/http"
	"strconv"
	"zeit/config"
	"zeit/infras/otel"
	"zeit/internal/domains/worldtime/model/dto"
	"zeit/internal/domains/worldtime/service"
	"zeit/shared"
	"zeit/shared/cache"
	"zeit/shared/clock"
	"zeit/shared/constant"
	"zeit/shared/failure"
	"zeit/shared/ratelimit"
	"zeit/shared/validator"
	"zeit/transport/http/middleware"
	"zeit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.WorldTime
	cache   cache.ReportCache
	limiter ratelimit.Limiter
	clock   clock.Clock
	config  *config.Config
	otel    otel.Otel
}

func New(svc service.WorldTime, cache cache.ReportCache, limiter ratelimit.Limiter, clk clock.Clock, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: svc,
		cache:   cache,
		limiter: limiter,
		clock:   clk,
		config:  cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTime)
		routerGroup.Options("/", handler.Preflight)
		routerGroup.Get("/timezones", handler.GetTimezones)
	})
}

// GetTime answers the current time decomposed for one timezone.
// @Summary Current time in a timezone
// @Description Returns the current date and time decomposed for the given IANA timezone: local and UTC time, offset, abbreviation, weekday, ISO week, and calendar facts. Responses are cached for one second per query string and rate limited per client.
// @Tags Time
// @Produce json
// @Param timezone query string true "IANA timezone identifier" example(Pacific/Auckland)
// @Success 200 {object} model.TimeReport
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api [get]
func (handler *Handler) GetTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTime")
	defer scope.End()

	key := shared.CanonicalQueryKey(r.URL.Query())
	scope.SetAttribute(constant.OtelCacheKeyAttribute, key)

	// A fresh cached payload answers before any other stage runs; cache
	// hits are never rate limited or revalidated.
	if report, ok := handler.cache.Get(ctx, key); ok {
		scope.AddEvent("served from cache")
		response.WithPayload(w, report)

		return
	}

	if handler.config.App.RateLimiter.Enable {
		admission := handler.limiter.Admit(ctx, middleware.ClientIP(r))

		w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(handler.config.App.RateLimiter.MaxRequests))
		w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(admission.Remaining))
		w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(handler.config.App.RateLimiter.WindowSeconds))

		if !admission.Allowed {
			response.WithError(w, failure.TooManyRequests(constant.ResponseErrorRateLimited))

			return
		}
	}

	query := validator.TimeQuery{Timezone: r.URL.Query().Get(constant.RequestParamTimezone)}
	if err := validator.ValidateTimeQuery(query); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	report, err := handler.service.Report(ctx, query.Timezone, handler.clock.Now())
	if err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) == http.StatusInternalServerError {
			log.Error().Err(err).Str("cache_key", key).Msg("failed to compute time report")
		}

		response.WithError(w, err)

		return
	}

	handler.cache.Save(ctx, key, report)

	response.WithPayload(w, report)
}

// Preflight answers cross-origin preflight, bypassing every other stage.
// @Summary CORS preflight
// @Tags Time
// @Success 204
// @Router /api [options]
func (handler *Handler) Preflight(w http.ResponseWriter, _ *http.Request) {
	response.WithNoContent(w)
}

// GetTimezones lists the supported timezone identifiers.
// @Summary Supported timezones
// @Description Enumerates every IANA timezone identifier the host platform supports; the same set the timezone parameter is validated against.
// @Tags Time
// @Produce json
// @Success 200 {object} dto.TimezonesResponse
// @Router /api/timezones [get]
func (handler *Handler) GetTimezones(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimezones")
	defer scope.End()

	zones := handler.service.Zones(ctx)

	response.WithJSON(w, http.StatusOK, dto.TimezonesResponse{
		Count:     len(zones),
		Timezones: zones,
	})
}
