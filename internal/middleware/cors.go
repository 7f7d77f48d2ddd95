package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors allows the single-page frontend to call the API from another origin
// Cors 允许前端从其他源访问 API
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, lang, "+DefaultTraceIDHeader)
		c.Header("Access-Control-Expose-Headers", DefaultTraceIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
