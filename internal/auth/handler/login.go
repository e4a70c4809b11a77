package handler

import (
	"errors"
	"net/http"

	"account-service/internal/auth"
	"account-service/internal/logger"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, sess, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// one stable message for unknown user and wrong password;
		// anything else (corrupt record, store fault) is internal
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		logger.Error("login failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	issueCookie(c, sess)

	logger.Info("user logged in", map[string]any{"user_id": user.ID})

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}
