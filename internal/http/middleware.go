package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"techsync/internal/domain"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "techsync.request_id"
	userKey         = "techsync.user"
)

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestIDMiddleware() gin.HandlerFunc {
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

func (h *Handler) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.WithFields(map[string]any{
			"request_id": requestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request")
	}
}

// authenticate resolves the bearer token to an active user and stores it in
// the request context for downstream handlers.
func (h *Handler) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.auth.Authenticate(c.Request.Context(), bearerToken(c))
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// requireRole runs the full authentication check and additionally requires an
// exact role match.
func (h *Handler) requireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.auth.Authorize(c.Request.Context(), bearerToken(c), role)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func currentUser(c *gin.Context) *domain.User {
	value, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	user, _ := value.(*domain.User)
	return user
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
