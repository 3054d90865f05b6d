package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vendora/vendora-backend/internal/platform/ctxutil"
)

// AttachTraceContext assigns the request a trace id and request id, taking
// the caller's X-Trace-Id when present so ids survive hop boundaries.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-Id")
		if traceID == "" {
			traceID = uuid.NewString()
		}
		requestID := uuid.NewString()

		td := &ctxutil.TraceData{TraceID: traceID, RequestID: requestID}
		c.Request = c.Request.WithContext(ctxutil.WithTraceData(c.Request.Context(), td))

		c.Writer.Header().Set("X-Trace-Id", traceID)
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Next()
	}
}
