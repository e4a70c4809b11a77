package handler

import (
	"net/http"

	"account-service/internal/logger"

	"github.com/gin-gonic/gin"
)

// CurrentUser reports who the session belongs to. Missing or expired
// sessions are not an error: the response is a JSON null so the client
// treats them as "not logged in".
func (h *Handler) CurrentUser(c *gin.Context) {
	user, err := h.auth.ResolveSession(c.Request.Context(), sessionIDFromRequest(c))
	if err != nil {
		logger.Error("session resolution failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}
