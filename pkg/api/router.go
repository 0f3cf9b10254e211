package api

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexacrm/landing/pkg/middleware"
)

// NewRouter registers every route of the site
func NewRouter(h *Handlers, allowedOrigin string, assets fs.FS, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(allowedOrigin))

	router.StaticFS("/static", http.FS(assets))

	router.GET("/", h.LandingPage)
	router.GET("/health", h.HealthCheck)

	api := router.Group("/api")
	api.POST("/waitlist", h.HandleWaitlist)
	api.POST("/contact", h.HandleContact)

	return router
}
