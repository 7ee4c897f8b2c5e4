package handlers

import (
	"net/http"
	"time"

	"gin-lambda-listener/internal/config"
	"gin-lambda-listener/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the example gin application served through the Lambda
// listener. The routes cover the three body shapes the adapter has to get
// right: plain text, JSON, and a binary payload.
func NewRouter(cfg *config.Config, log *logrus.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(log))
	router.Use(middleware.Recovery(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   cfg.ServiceName,
			"mode":      config.GetDeploymentMode(),
			"timestamp": time.Now().UTC(),
		})
	})

	router.GET("/hello", Hello)
	router.POST("/echo", Echo)
	router.GET("/logo.png", Logo)

	return router
}
