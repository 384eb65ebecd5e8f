package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newton_cooling/internal/logger"
)

const (
	headerRequestID  = "X-Request-ID"
	ctxKeyRequestID  = "requestId"
	ctxKeyUserID     = "userId"
	queryAccessToken = "access_token"
	maxRequestIDLen  = 128
)

// requestIDMiddleware echoes a caller-supplied X-Request-ID or mints one.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := strings.TrimSpace(c.GetHeader(headerRequestID))
	if id == "" || len(id) > maxRequestIDLen {
		id = uuid.NewString()
	}
	c.Set(ctxKeyRequestID, id)
	c.Header(headerRequestID, id)
	c.Next()
}

func requestID(c *gin.Context) string {
	return c.GetString(ctxKeyRequestID)
}

func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := ""
	switch {
	case header != "":
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Authorization header format",
			})
			return
		}
		token = parts[1]
	case c.Query(queryAccessToken) != "":
		token = c.Query(queryAccessToken)
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	userId, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(ctxKeyUserID, userId)
	c.Next()
}

// requestLog returns the handler logger tagged with the current request ID.
func (h *Handler) requestLog(c *gin.Context) *logger.Logger {
	return h.log.With("request_id", requestID(c))
}
