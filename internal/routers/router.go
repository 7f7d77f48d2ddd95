// Package routers wires the HTTP surface onto the app container
// Package routers 将 HTTP 路由接到应用容器上
package routers

import (
	"net/http"
	"time"

	"github.com/demiurge-app/universe-wiki-service/internal/app"
	"github.com/demiurge-app/universe-wiki-service/internal/middleware"
	"github.com/demiurge-app/universe-wiki-service/internal/routers/api_router"
	"github.com/demiurge-app/universe-wiki-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api",
		FillInterval: time.Second,
		Capacity:     100,
		Quantum:      100,
	},
)

// NewRouter builds the gin engine with the full middleware chain and routes
// NewRouter 构建带完整中间件链与路由的 gin 引擎
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo(app.Name, app.Version))
		api.Use(middleware.Tracer(middleware.TracerConfig{
			Enabled: cfg.Tracer.Enabled,
			Header:  cfg.Tracer.Header,
		}))
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))
		api.Use(api_router.Metrics())

		// 创建 Handlers（注入 App Container）
		universeHandler := api_router.NewUniverseHandler(appContainer)
		entityHandler := api_router.NewEntityHandler(appContainer)
		templateHandler := api_router.NewTemplateHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		api.GET("/universes", universeHandler.List)
		api.POST("/universes", universeHandler.Create)
		api.GET("/universes/:id", universeHandler.Get)
		api.PUT("/universes/:id", universeHandler.Update)
		api.DELETE("/universes/:id", universeHandler.Delete)
		api.POST("/universes/:id/image", universeHandler.SetImage)

		api.GET("/entities", entityHandler.List)
		api.POST("/entities", entityHandler.Create)
		api.GET("/entities/:id", entityHandler.Get)
		api.PUT("/entities/:id", entityHandler.Update)
		api.DELETE("/entities/:id", entityHandler.Delete)
		api.GET("/entities/:id/links", entityHandler.ResolveLinks)
		api.POST("/entities/:id/image", entityHandler.SetImage)

		api.GET("/templates", templateHandler.List)
		api.POST("/templates", templateHandler.Create)
		api.PUT("/templates/:id", templateHandler.Update)
		api.DELETE("/templates/:id", templateHandler.Delete)

		api.GET("/health", healthHandler.Check)
	}

	// 上传文件静态访问
	if cfg.LocalFS.HttpfsIsEnable {
		r.StaticFS(cfg.Upload.UrlPrefix, http.Dir(cfg.LocalFS.SavePath))
	}

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.NoRoute(middleware.NoFound())

	return r
}
