// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Pagination: Fixed page sizes for the catalog and comment endpoints.
  - Rate Limiting: Request budgets and window sizes per client IP.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "herodex-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Pagination

const (
	// HeroPageSize is the fixed number of heroes per catalog page.
	HeroPageSize = 10

	// CommentPageSize is the fixed number of comments per page on a hero's thread.
	CommentPageSize = 3
)

// # Request Limits

const (
	// MaxBodyBytes caps the size of any JSON request body.
	MaxBodyBytes = 50 << 20 // 50 MB

	// MaxCommentLength is the upper bound on comment body characters.
	MaxCommentLength = 2000

	// PowerstatMin and PowerstatMax bound every powerstat value.
	PowerstatMin = 0
	PowerstatMax = 100
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the in-process fallback limiter.
	DefaultRateLimitBurst = 150

	// RateLimitWindow is the fixed-window size for the Redis-backed counter.
	RateLimitWindow = 1 * time.Second

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData       = "data"
	FieldCount      = "count"
	FieldPagination = "pagination"
	FieldError      = "error"
	FieldCode       = "code"
	FieldDetails    = "details"
	FieldMessage    = "message"
	FieldStatus     = "status"
	FieldChecks     = "checks"
)

// # Database Schemas

const (
	SchemaCore   = "core"
	SchemaSocial = "social"
)

// # Redis Prefixes

const (
	// RedisPrefixRateLimit namespaces the per-IP fixed-window counters.
	RedisPrefixRateLimit = "ratelimit:ip:"
)
