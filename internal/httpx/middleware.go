package httpx

import (
	"time"

	"github.com/google/uuid"

	"mahjongev/internal/logging"
)

// RequestID stamps every request with a UUID, mirroring the teacher's
// use of github.com/google/uuid for request identification.
func RequestID() MiddlewareFunc {
	return func(c *Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.SetHeader("X-Request-ID", id)
	}
}

// Logger logs request start/end with duration, per SPEC_FULL.md's
// "every request logs start/end with duration ... at Info."
func Logger() MiddlewareFunc {
	return func(c *Context) {
		start := time.Now()
		method, path := c.Method(), c.Path()
		logging.Info("request start: %s %s", method, path)
		defer func() {
			logging.Info("request end: %s %s duration=%s", method, path, time.Since(start))
		}()
		c.Raw().Next()
	}
}
