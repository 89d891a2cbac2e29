package logging

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

// RequestID reuses the incoming X-Request-ID or assigns a new UUID, and
// echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// RequestIDFrom returns the identifier assigned by RequestID, if any.
func RequestIDFrom(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}

// GinMiddleware logs every request once it has been handled. Server
// errors are logged at error level and client errors at warning level.
func GinMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t0 := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		var evt *zerolog.Event
		switch {
		case status >= 500:
			evt = log.Error()
		case status >= 400:
			evt = log.Warn()
		default:
			evt = log.Info()
		}
		if len(ctx.Errors) > 0 {
			evt = evt.Str("errors", ctx.Errors.String())
		}
		evt.
			Str("requestId", RequestIDFrom(ctx)).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", status).
			Str("clientIp", ctx.ClientIP()).
			Dur("duration", time.Since(t0)).
			Msg("request")
	}
}
