package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/invierte-coyoacan/invest-backend-go/internal/config"
	"github.com/invierte-coyoacan/invest-backend-go/internal/dataset"
	"github.com/invierte-coyoacan/invest-backend-go/internal/handler"
	"github.com/invierte-coyoacan/invest-backend-go/internal/middleware"
	"github.com/invierte-coyoacan/invest-backend-go/internal/service"
	"github.com/invierte-coyoacan/invest-backend-go/internal/session"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, cache *dataset.Cache, exploreService *service.ExploreService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Invierte en Coyoacán API is running",
		})
	})

	exploreHandler := handler.NewExploreHandler(exploreService)
	sessionHandler := handler.NewSessionHandler(session.NewStore(cfg.SessionTTL))
	adminHandler := handler.NewAdminHandler(cache)

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))
	{
		// 筛选控件的可选值域
		filters := api.Group("/filters")
		{
			filters.GET("/options", exploreHandler.GetOptions)
		}

		// 地图与汇总数据
		properties := api.Group("/properties")
		{
			properties.GET("", exploreHandler.GetProperties)
			properties.GET("/kpis", exploreHandler.GetKPIs)
			properties.GET("/summary", exploreHandler.GetSummary)
		}

		// 一次性返回完整仪表盘
		api.GET("/dashboard", exploreHandler.GetDashboard)

		// 会话内的筛选状态
		sessions := api.Group("/sessions")
		{
			sessions.POST("", sessionHandler.Create)
			sessions.GET("/:id/filters", sessionHandler.GetFilters)
			sessions.PUT("/:id/filters", sessionHandler.PutFilters)
		}

		// 数据集管理（需要令牌）
		admin := api.Group("/admin")
		admin.Use(middleware.Auth(cfg.JWTSecret))
		{
			admin.POST("/dataset/reload", adminHandler.ReloadDataset)
		}
	}

	return r
}
