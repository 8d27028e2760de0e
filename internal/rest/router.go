package rest

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sergeii/enigma/api/docs" // nolint: revive
	"github.com/sergeii/enigma/internal/rest/api"
)

func NewRouter(a *api.API) *gin.Engine {
	router := gin.Default()
	router.GET("/status", a.Status)

	sessions := router.Group("/api/sessions")
	sessions.GET("", a.ListSessions)
	sessions.POST("", a.CreateSession)
	sessions.POST("/import", a.ImportSession)
	sessions.GET("/:id", a.ViewSession)
	sessions.PATCH("/:id", a.UpdateSession)
	sessions.DELETE("/:id", a.DeleteSession)
	sessions.POST("/:id/encode", a.EncodeText)
	sessions.GET("/:id/table", a.ViewTable)
	sessions.GET("/:id/keysheet", a.ExportSession)
	sessions.GET("/:id/events", a.WatchSession)

	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
