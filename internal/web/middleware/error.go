package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware renders the error page for panics and for errors
// handlers attach via c.Error. Details are logged, never sent to the client.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[%s] panic: %v", RequestID(c), err)
				c.HTML(http.StatusInternalServerError, "error", gin.H{
					"Title": "Something went wrong",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			log.Printf("[%s] %v", RequestID(c), c.Errors.Last())
			if !c.Writer.Written() {
				c.HTML(http.StatusInternalServerError, "error", gin.H{
					"Title": "Something went wrong",
				})
			}
		}
	}
}
