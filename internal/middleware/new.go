package middleware

import (
	"integrated-bots/pkg/log"
)

// Middleware bundles the cross-cutting Gin middleware for the gateway.
type Middleware struct {
	l               log.Logger
	rateLimitPerMin int
}

func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		rateLimitPerMin: rateLimitPerMin,
	}
}
