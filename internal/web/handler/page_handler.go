package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog/internal/core/service"
	"microblog/internal/web/middleware"
)

type PageHandler struct {
	postService *service.PostService
}

func NewPageHandler(postService *service.PostService) *PageHandler {
	return &PageHandler{postService: postService}
}

// Home handles GET /. Signed-in users get their dashboard, everyone else the
// landing page with the registration form.
func (h *PageHandler) Home(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.HTML(http.StatusOK, "homepage", pageData(c, "Welcome"))
		return
	}

	posts, err := h.postService.ListByAuthor(c.Request.Context(), identity.UserID)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	data := pageData(c, "Dashboard")
	data["Posts"] = posts
	c.HTML(http.StatusOK, "dashboard", data)
}
