package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/andregumieri/fiap-brigalab/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionIDKey is the gin context key holding the caller's session id
const SessionIDKey = "sessionID"

// TokenParser turns a bearer token into the session id it was issued for
type TokenParser interface {
	Parse(token string) (string, error)
}

// SessionAuth middleware extracts the session token from the Authorization
// header (RFC 6750 Bearer scheme) and stores the session id in the context.
func SessionAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondUnauthorized(c, "Missing Authorization header. Create a session to obtain a Bearer token.")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondUnauthorized(c, "Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			respondUnauthorized(c, "Bearer token is empty")
			return
		}

		sessionID, err := parser.Parse(tokenString)
		if err != nil {
			respondUnauthorized(c, err.Error())
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

func respondUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, message))
}

// RequestLogger logs one structured line per request
func RequestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if sid := c.GetString(SessionIDKey); sid != "" {
			fields["session_id"] = sid
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		entry := logger.WithFields(fields)
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case c.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	}
}
