package services

import (
	"testing"
	"time"

	"github.com/agrisync/agrisync/internal/database"
	"github.com/agrisync/agrisync/internal/pricing"
	"github.com/agrisync/agrisync/internal/repository"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	farmerRepo  *repository.FarmerRepository
	buyerRepo   *repository.BuyerRepository
	harvestRepo *repository.HarvestRepository
	demandRepo  *repository.DemandRepository

	directory *DirectoryService
	harvests  *HarvestService
	demands   *DemandService
	matcher   *MatchService
	dashboard *DashboardService
}

func setupTestEnv(t *testing.T, clock Clock) *testEnv {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	env := &testEnv{
		farmerRepo:  repository.NewFarmerRepository(db),
		buyerRepo:   repository.NewBuyerRepository(db),
		harvestRepo: repository.NewHarvestRepository(db),
		demandRepo:  repository.NewDemandRepository(db),
	}
	env.directory = NewDirectoryService(env.farmerRepo, env.buyerRepo)
	env.harvests = NewHarvestService(env.harvestRepo, env.farmerRepo, clock)
	env.demands = NewDemandService(env.demandRepo, env.buyerRepo)
	env.matcher = NewMatchService(env.demandRepo, env.harvestRepo, pricing.DefaultRules(), clock)
	env.dashboard = NewDashboardService(env.farmerRepo, env.buyerRepo, env.harvestRepo, env.demandRepo)

	return env
}

func daysFrom(base time.Time, days int) time.Time {
	return base.AddDate(0, 0, days)
}
