package handler

import (
	"net/http"

	"account-service/internal/logger"
	"account-service/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Logout(c *gin.Context) {
	sessionID := sessionIDFromRequest(c)
	if sessionID != "" {
		if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
			// best-effort: the cookie is cleared regardless
			logger.Warn("session delete failed", map[string]any{"error": err.Error()})
		}
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Status(http.StatusNoContent)
}
