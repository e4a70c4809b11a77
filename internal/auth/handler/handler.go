// Package handler exposes the authentication boundary over HTTP:
// register, login, logout, and current-user lookup.
package handler

import (
	"net/http"
	"time"

	"account-service/internal/auth"
	"account-service/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	auth *auth.Authenticator
}

func NewHandler(authenticator *auth.Authenticator) *Handler {
	return &Handler{auth: authenticator}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", h.CurrentUser)
}

// userResponse is the only user shape that crosses the HTTP boundary.
// Credential material never appears here.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *auth.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

func issueCookie(c *gin.Context, sess *session.Session) {
	session.SetCookie(c.Writer, sess.SessionID, sess.ExpiresAt, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionIDFromRequest(c *gin.Context) string {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
