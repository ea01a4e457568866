package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/medpub/app-busca-medica/internal/api/handlers"
	middlewares "github.com/medpub/app-busca-medica/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers agrupa os handlers registrados no router
type Handlers struct {
	Search          *handlers.SearchHandler
	Recommendations *handlers.RecommendationHandler
	Trending        *handlers.TrendingHandler
	Health          *handlers.HealthHandler
}

func SetupRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(middlewares.ExtractUserContext())
	r.Use(middlewares.RequestTiming(logger))

	r.GET("/liveness", h.Health.Liveness)
	r.GET("/readiness", h.Health.Readiness)
	r.GET("/health", h.Health.Health)

	api := r.Group("/api/v1")
	{
		search := api.Group("/search")
		{
			search.GET("", h.Search.Search)
			search.GET("/suggestions", h.Search.Suggestions)
			search.POST("/log", h.Search.LogQuery)
		}

		api.GET("/content/:id/similar", h.Recommendations.Similar)
		api.POST("/recommendations", h.Recommendations.Recommend)

		trending := api.Group("/trending")
		{
			trending.GET("/content", h.Trending.Content)
			trending.GET("/topics", h.Trending.Topics)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID, X-User-ID, X-User-Specialties")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
