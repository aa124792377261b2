package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"microblog/internal/core/service"
	"microblog/internal/web/middleware"
)

const sessionMaxAge = int(service.TokenExpirationHours * time.Hour / time.Second)

type AuthHandler struct {
	authService   *service.AuthService
	secureCookies bool
}

func NewAuthHandler(authService *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
	}
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login", pageData(c, "Log In"))
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.authService.Login(c.Request.Context(), username, password)
	if err != nil {
		if vErr, ok := service.AsValidation(err); ok {
			data := pageData(c, "Log In")
			data["Errors"] = vErr.Messages
			c.HTML(http.StatusUnprocessableEntity, "login", data)
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/")
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.authService.Register(c.Request.Context(), username, password)
	if err != nil {
		if vErr, ok := service.AsValidation(err); ok {
			// Re-render the homepage form with what was submitted.
			data := pageData(c, "Welcome")
			data["Errors"] = vErr.Messages
			data["FormUsername"] = strings.TrimSpace(username)
			c.HTML(http.StatusUnprocessableEntity, "homepage", data)
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, sessionMaxAge, "/", "", h.secureCookies, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookies, true)
}
