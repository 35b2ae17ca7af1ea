package main

import (
	"fmt"
	"log"

	"github.com/agrisync/agrisync/internal/config"
	"github.com/agrisync/agrisync/internal/database"
	"github.com/agrisync/agrisync/internal/handlers"
	"github.com/agrisync/agrisync/internal/repository"
	"github.com/agrisync/agrisync/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	_ "github.com/agrisync/agrisync/docs"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	},
}

// @title           AgriSync API
// @version         1.0
// @description     Harvest and demand marketplace with urgency-based matching and pricing
// @BasePath        /api/v1
func main() {
	Execute()
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return err
	}

	if err := database.Migrate(db); err != nil {
		return err
	}

	signingKey := cfg.Quote.SigningKey
	if signingKey == "" {
		signingKey = uuid.NewString()
		log.Println("[Serve] QUOTE_SIGNING_KEY not set; quotes will not survive a restart")
	}

	farmerRepo := repository.NewFarmerRepository(db)
	buyerRepo := repository.NewBuyerRepository(db)
	harvestRepo := repository.NewHarvestRepository(db)
	demandRepo := repository.NewDemandRepository(db)

	clock := services.SystemClock{Location: cfg.Location}

	directoryService := services.NewDirectoryService(farmerRepo, buyerRepo)
	harvestService := services.NewHarvestService(harvestRepo, farmerRepo, clock)
	demandService := services.NewDemandService(demandRepo, buyerRepo)
	matchService := services.NewMatchService(demandRepo, harvestRepo, cfg.PricingRules(), clock)
	quoteService := services.NewQuoteService(signingKey, cfg.Quote.TTL)
	dashboardService := services.NewDashboardService(farmerRepo, buyerRepo, harvestRepo, demandRepo)

	router := gin.Default()
	handlers.RegisterRoutes(router, handlers.Handlers{
		Public:    handlers.NewPublicHandler(dashboardService),
		Directory: handlers.NewDirectoryHandler(directoryService),
		Harvest:   handlers.NewHarvestHandler(harvestService),
		Demand:    handlers.NewDemandHandler(demandService),
		Match:     handlers.NewMatchHandler(matchService, quoteService),
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting AgriSync server on %s (base price %.2f, timezone %s)", addr, cfg.Pricing.BasePrice, cfg.Location)
	return router.Run(addr)
}
