package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with the full middleware stack:
// Recovery → RequestID → AccessLog → CORS, then the routes.
func NewRouter(handler *Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(logger))

	// Any origin with credentials: AllowOriginFunc instead of a wildcard,
	// which gin-contrib/cors rejects when credentials are allowed. AllowHeaders
	// stays unset; ReflectRequestHeaders supplies the per-preflight value.
	router.Use(ReflectRequestHeaders(), cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowCredentials: true,
	}))

	router.GET("/", handler.Root)
	router.GET("/api/profile", handler.GetProfile)
	router.GET("/api/diary", handler.ListDiary)
	router.GET("/api/diary/:item_id", handler.GetDiaryItem)
	router.GET("/test", handler.Diagnostics)

	return router
}
