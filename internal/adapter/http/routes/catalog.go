package routes

import (
	"murilov3d/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCosts = "/costs"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	costs := rg.Group(PathCosts)
	{
		costs.GET("", catalogHandler.GetCatalog)
		costs.PUT("/config", catalogHandler.UpdateConfig)

		costs.POST("/personnel", catalogHandler.AddPerson)
		costs.PATCH("/personnel/:id", catalogHandler.UpdatePerson)
		costs.DELETE("/personnel/:id", catalogHandler.RemovePerson)

		costs.POST("/equipment", catalogHandler.AddEquipment)
		costs.PATCH("/equipment/:id", catalogHandler.UpdateEquipment)
		costs.DELETE("/equipment/:id", catalogHandler.RemoveEquipment)

		costs.POST("/materials", catalogHandler.AddMaterial)
		costs.PATCH("/materials/:id", catalogHandler.UpdateMaterial)
		costs.DELETE("/materials/:id", catalogHandler.RemoveMaterial)
	}
}
