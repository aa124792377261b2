package handler

import (
	"github.com/gin-gonic/gin"

	"microblog/internal/web/middleware"
)

// pageData seeds the template data every page shares: the title and, when the
// request carries a verified identity, the signed-in user.
func pageData(c *gin.Context, title string) gin.H {
	data := gin.H{"Title": title}
	if identity, ok := middleware.CurrentIdentity(c); ok {
		data["LoggedIn"] = true
		data["Username"] = identity.Username
	}
	return data
}
