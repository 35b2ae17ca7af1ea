package handlers

import (
	"github.com/agrisync/agrisync/internal/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Public    *PublicHandler
	Directory *DirectoryHandler
	Harvest   *HarvestHandler
	Demand    *DemandHandler
	Match     *MatchHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.Use(middleware.RequestID())

	router.GET("/", h.Public.Home)
	router.GET("/docs", SwaggerUI("/swagger/doc.json"))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		api.GET("/dashboard", h.Public.GetDashboard)

		api.POST("/farmers", h.Directory.RegisterFarmer)
		api.GET("/farmers/:id", h.Directory.GetFarmer)
		api.POST("/buyers", h.Directory.RegisterBuyer)
		api.GET("/buyers/:id", h.Directory.GetBuyer)

		api.POST("/harvests", h.Harvest.AddHarvest)
		api.GET("/harvests", h.Harvest.ListHarvests)
		api.GET("/harvests/:id", h.Harvest.GetHarvest)

		api.POST("/demands", h.Demand.AddDemand)
		api.GET("/demands", h.Demand.ListDemands)
		api.GET("/demands/:id", h.Demand.GetDemand)
		api.POST("/demands/:id/match", h.Match.MatchDemand)

		api.POST("/quotes/verify", h.Match.VerifyQuote)
	}
}
