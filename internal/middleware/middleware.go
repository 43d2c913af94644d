package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SharerIDHeader carries the identity of the calling user. The gateway in
// front of this service is responsible for authenticating it.
const SharerIDHeader = "X-Sharer-User-Id"

const requestIDHeader = "X-Request-ID"
const requestIDKey = "request_id"
const sharerIDKey = "sharer_id"

// RecoveryMiddleware recovers from panics and logs them with the request context.
func RecoveryMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}

// LoggerMiddleware logs one structured line per request.
func LoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String(requestIDKey, c.GetString(requestIDKey)),
		)
	}
}

// RequestIDMiddleware propagates the inbound request id or generates one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// CORSMiddleware allows cross-origin calls from the web frontend.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, SharerIDHeader, requestIDHeader)
	return cors.New(cfg)
}

// SharerIDMiddleware parses the X-Sharer-User-Id header and stores it in
// the request context. Routes that require identity call GetSharerID.
func SharerIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(SharerIDHeader); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				c.Set(sharerIDKey, id)
			}
		}
		c.Next()
	}
}

// GetSharerID returns the calling user's id extracted from the sharer header.
func GetSharerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(sharerIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
