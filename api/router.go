package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter mounts the review endpoints, the health probe and the API docs.
func NewRouter(log *slog.Logger, handler *Handler, allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), requestLogger(log), recovery(log))
	router.Use(cors.New(corsConfig(allowOrigins)))

	router.POST("/analyze_review", handler.AnalyzeReview)
	router.POST("/predict", handler.Predict)
	router.GET("/health", handler.Health)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func corsConfig(allowOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,

		AllowBrowserExtensions: true,
	}
	if len(allowOrigins) == 0 || (len(allowOrigins) == 1 && allowOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowOrigins
	}
	return config
}
