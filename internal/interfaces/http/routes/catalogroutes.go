package routes

import (
	"github.com/gin-gonic/gin"

	cataloghandlers "deskline/internal/interfaces/http/handlers/catalog"
)

type CatalogRouteConfig struct {
	CatalogHandler *cataloghandlers.Handler
}

func SetupCatalogRoutes(engine *gin.Engine, config *CatalogRouteConfig) {
	engine.GET("/items", config.CatalogHandler.ListItems)
}
