package middleware

import (
	"github.com/demiurge-app/universe-wiki-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// AppInfo injects service identity into the request context
// AppInfo 将服务标识注入请求上下文
func AppInfo(name, version string) gin.HandlerFunc {

	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)
		c.Set("access_host", app.GetAccessHost(c))

		c.Next()
	}
}
