package routes

import (
	"murilov3d/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSync = "/sync"
)

func addSyncRoutes(rg *gin.RouterGroup, syncHandler *handlers.SyncHandler) {
	sync := rg.Group(PathSync)
	{
		sync.GET("/status", syncHandler.GetStatus)
		sync.PUT("/endpoint", syncHandler.SetEndpoint)
		sync.POST("/test", syncHandler.TestConnection)
		sync.POST("/push", syncHandler.Push)
		sync.POST("/pull", syncHandler.Pull)
	}
}
