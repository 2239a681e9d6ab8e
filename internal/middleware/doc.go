// Package middleware holds the gin middleware the numerics server installs
// in front of its handlers.
//
// RequestID tags each request with a "req_" ULID, reusing a well formed
// X-Request-ID from the client and replacing anything else. Logger writes
// one structured line per request carrying that ID.
//
// RateLimit hands out token buckets keyed by client IP, or a single shared
// bucket when RateLimitConfig.Global is set. A refused request gets 429, a
// Retry-After header and a failed Result whose error_kind is rate_limited.
// Idle client buckets are swept periodically.
//
// CORS admits browser callers from a configured origin list:
//
//	router.Use(middleware.RequestID())
//	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
