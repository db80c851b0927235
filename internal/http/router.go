package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"carenotify/internal/http/controller"
	"carenotify/internal/http/middleware"
	"carenotify/internal/metrics"
)

func NewRouter(handler *controller.Handler, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		otelgin.Middleware("carenotify"),
		middleware.ZapLogger(logger),
		middleware.ZapRecovery(logger),
	)

	router.GET("/health", func(c *gin.Context) {
		c.Status(200)
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.POST("/login", handler.Login)
	router.POST("/notifications", handler.CreateNotification)
	router.GET("/notifications", handler.ListNotifications)
	router.GET("/notifications/:id", handler.ViewNotification)

	return router
}
