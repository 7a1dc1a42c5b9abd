package middleware

import (
	"task-board/pkg/log"
)

// Config tunes the per-client rate limiter. RequestsPerMin <= 0 disables it.
type Config struct {
	RequestsPerMin int
	MaxClients     int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxClients)
	}
	return mw
}
