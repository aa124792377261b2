package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"microblog/internal/core/repository"
	"microblog/internal/core/service"
	"microblog/internal/web/middleware"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// New handles GET /create-post
func (h *PostHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, "create-post", pageData(c, "New Post"))
}

// Create handles POST /create-post
func (h *PostHandler) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		// RequireAuth guards this route; keep the same redirect anyway.
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	title := c.PostForm("title")
	body := c.PostForm("body")

	post, err := h.postService.Create(c.Request.Context(), title, body, identity.UserID)
	if err != nil {
		if vErr, ok := service.AsValidation(err); ok {
			data := pageData(c, "New Post")
			data["Errors"] = vErr.Messages
			data["FormTitle"] = title
			data["FormBody"] = body
			c.HTML(http.StatusUnprocessableEntity, "create-post", data)
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/post/%d", post.ID))
}

// Show handles GET /post/:id
func (h *PostHandler) Show(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "error", pageData(c, "Post not found"))
		return
	}

	post, err := h.postService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.HTML(http.StatusNotFound, "error", pageData(c, "Post not found"))
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	data := pageData(c, post.Title)
	data["Post"] = post
	c.HTML(http.StatusOK, "post", data)
}
