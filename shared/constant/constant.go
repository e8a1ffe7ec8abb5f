package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamTimezone = "timezone"
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
	OtelCacheScopeName   = "cache"
	OtelLimiterScopeName = "limiter"

	OtelCacheKeyAttribute = "cache.key"
	OtelClientIDAttribute = "client.id"
	OtelTimezoneAttribute = "timezone.id"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderCacheControl       = "Cache-Control"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"

	// CacheControlShortLived mirrors the one-second response cache window.
	CacheControlShortLived = "public, max-age=1"
)

const (
	ResponseErrorMissingTimezone = "Missing 'timezone' query parameter."
	ResponseErrorZoneFormat      = "Invalid timezone format. Please provide a valid IANA timezone identifier."
	ResponseErrorRateLimited     = "Rate limit exceeded. Please try again later."
	ResponseErrorInternal        = "Internal Server Error. Please try again later."

	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	// ClientIDUnknown is the shared rate-limit bucket for requests whose
	// origin cannot be derived from any header or the connection itself.
	ClientIDUnknown = "unknown"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	// MaxZoneOffsetMinutes bounds every real UTC offset (UTC+14:00 is the
	// easternmost zone in the IANA database).
	MaxZoneOffsetMinutes = 14 * 60
)
