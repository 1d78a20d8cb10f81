package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	TraceIDKey    = "trace_id"
	TraceIDHeader = "X-Trace-ID"
)

type traceIDCtxKey struct{}

// TraceIDMiddleware tags every request with a fresh UUID. The id is stored on
// the gin context, on the request context and in the response header.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		c.Set(TraceIDKey, traceID)
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), traceIDCtxKey{}, traceID))
		c.Next()
	}
}

// TraceIDFromContext returns the trace id set by TraceIDMiddleware, or "".
func TraceIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(traceIDCtxKey{}).(string); ok {
		return v
	}
	return ""
}
