package router

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orangeot/backoffice-api/internal/auth"
)

// LoggerMiddleware logs HTTP requests with slog
func LoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		// Process request
		c.Next()

		// Calculate latency
		latency := time.Since(start)

		// Log request details
		logger.Info("HTTP Request",
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("query", query),
			slog.String("ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
			slog.Duration("latency", latency),
			slog.Int("body_size", c.Writer.Size()),
		)

		// Log errors if any
		if len(c.Errors) > 0 {
			for _, e := range c.Errors {
				logger.Error("Request error",
					slog.String("error", e.Error()),
					slog.Uint64("type", uint64(e.Type)),
				)
			}
		}
	}
}

// RequireAdmin gates the admin article routes. The bearer token must
// resolve to the configured admin account; anything else is bounced to
// the login page rather than answered with a bare 401, since the only
// caller is the admin panel in a browser.
func RequireAdmin(verifier auth.Verifier, adminEmail, loginURL string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		user, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Admin auth rejected",
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()),
			)
			c.Redirect(http.StatusSeeOther, loginURL)
			c.Abort()
			return
		}

		if !strings.EqualFold(user.Email, adminEmail) {
			logger.Warn("Admin auth rejected: not the admin account",
				slog.String("path", c.Request.URL.Path),
				slog.String("email", user.Email),
			)
			c.Redirect(http.StatusSeeOther, loginURL)
			c.Abort()
			return
		}

		c.Set("admin_email", user.Email)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
