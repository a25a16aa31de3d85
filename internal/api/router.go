package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debjganguly/uhi-backend-go/internal/config"
	"github.com/debjganguly/uhi-backend-go/internal/handler"
	"github.com/debjganguly/uhi-backend-go/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, analyze *handler.AnalyzeHandler, runs *handler.RunHandler, auth *handler.AuthHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查，不限流
	r.GET("/api/analyze/health", analyze.Health)

	// API 路由组
	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateLimitWindow))
	{
		analyzeGroup := api.Group("/analyze")
		{
			analyzeGroup.GET("/uhi", analyze.Analyze)
			analyzeGroup.GET("/export", analyze.Export)

			runGroup := analyzeGroup.Group("/runs")
			{
				runGroup.GET("", runs.List)
				runGroup.GET("/:id", runs.Get)
				runGroup.DELETE("/:id", middleware.RequireAuth(cfg.JWTSecret), runs.Delete)
			}
		}

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/token", auth.Token)
		}
	}

	return r
}
