package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"course-planner/config"
	"course-planner/internal/api/handler"
	"course-planner/internal/api/middleware"
	"course-planner/pkg/redis"
	"course-planner/pkg/response"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 可为 nil，此时不启用限流
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	// 按原始路径匹配，:code 可含 %2F
	r.UseRawPath = true
	r.UnescapePathValues = true

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, 10006, "接口不存在")
	})

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(rdb, cfg.Planner.RateLimit, cfg.Planner.RateLimitWindow, logger))
	{
		// 选课模块
		courses := v1.Group("/courses")
		{
			courses.GET("", h.Planner.ListCourses)
			courses.POST("", h.Planner.SubmitCourse)
			courses.DELETE("", h.Planner.ResetAll)
			courses.DELETE("/:code", h.Planner.DeleteCourse)
		}

		v1.GET("/units", h.Planner.GetTotalUnits)
		v1.GET("/alert", h.Planner.GetAlert)
		v1.GET("/form", h.Planner.GetForm)
		v1.GET("/options", h.Planner.GetOptions)
		v1.GET("/timetable", h.Planner.GetTimetable)

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/timetable", h.Export.ExportTimetable)
		}
	}

	return r
}
