package handlers

import (
	"net/http"

	"gamecollection/apperrors"
	"gamecollection/middleware"
	"gamecollection/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	sessions    *services.SessionService
}

func NewAuthHandler(authService *services.AuthService, sessions *services.SessionService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.Register(c.Request.Context(), &req); err != nil {
		respondError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	respondSuccess(c, nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if _, ok := h.sessions.Lookup(token); ok {
			respondError(c, http.StatusBadRequest, apperrors.ErrAlreadyAuthenticated.Error())
			return
		}
	}

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.Login(c.Request.Context(), &req); err != nil {
		respondError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	token, err := h.sessions.Create(req.Username)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "could not create session")
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, 0, "/", "", false, true)
	respondSuccess(c, nil)
}

// Logout clears the cookie and invalidates the server-side session entry,
// so the stale token cannot authenticate further requests.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil {
		h.sessions.Invalidate(token)
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, "/")
}
