package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/agrisync/agrisync/internal/config"
	"github.com/agrisync/agrisync/internal/database"
	"github.com/agrisync/agrisync/internal/repository"
	"github.com/agrisync/agrisync/internal/services"
	"github.com/spf13/cobra"
)

// MarketImport references parties by their position in the file (1-based),
// since store IDs are only known after insertion.
type MarketImport struct {
	Farmers  []PartyImport   `json:"farmers"`
	Buyers   []PartyImport   `json:"buyers"`
	Harvests []HarvestImport `json:"harvests"`
	Demands  []DemandImport  `json:"demands"`
}

type PartyImport struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type HarvestImport struct {
	Farmer              int     `json:"farmer"`
	CropName            string  `json:"crop_name"`
	Quantity            float64 `json:"quantity"`
	ExpectedHarvestDate string  `json:"expected_harvest_date"`
}

type DemandImport struct {
	Buyer            int     `json:"buyer"`
	CropName         string  `json:"crop_name"`
	QuantityRequired float64 `json:"quantity_required"`
}

type importSummary struct {
	Imported int
	Skipped  int
}

var (
	importFile string
	strictMode bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import farmers, buyers, harvests and demands from a JSON file",
	Long: `Import marketplace fixtures from a JSON file.

Expected JSON format:
{
  "farmers":  [{"name": "Asha", "phone": "555-0101", "location": "Nashik"}],
  "buyers":   [{"name": "FreshMart", "phone": "555-0199", "location": "Mumbai"}],
  "harvests": [{"farmer": 1, "crop_name": "wheat", "quantity": 100, "expected_harvest_date": "2024-06-01"}],
  "demands":  [{"buyer": 1, "crop_name": "wheat", "quantity_required": 50}]
}

"farmer" and "buyer" are 1-based positions in the farmers and buyers lists.
Harvest scores are computed as of the import date. Invalid records are skipped
unless --strict is set.`,
	Example: `  agrisync import -f market.json
  agrisync import --file market.json --strict`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runImport(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "JSON file to import (required)")
	importCmd.Flags().BoolVar(&strictMode, "strict", false, "Fail on any validation error")
	importCmd.MarkFlagRequired("file")
}

func runImport() error {
	if importFile == "" {
		return fmt.Errorf("file path is required")
	}

	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var market MarketImport
	if err := json.Unmarshal(data, &market); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return err
	}

	if err := database.Migrate(db); err != nil {
		return err
	}

	farmerRepo := repository.NewFarmerRepository(db)
	buyerRepo := repository.NewBuyerRepository(db)
	clock := services.SystemClock{Location: cfg.Location}

	importer := &marketImporter{
		directory: services.NewDirectoryService(farmerRepo, buyerRepo),
		harvests:  services.NewHarvestService(repository.NewHarvestRepository(db), farmerRepo, clock),
		demands:   services.NewDemandService(repository.NewDemandRepository(db), buyerRepo),
		strict:    strictMode,
	}

	log.Printf("[Import] Loading %s", importFile)
	summary, err := importer.Run(&market)
	if err != nil {
		return err
	}

	log.Printf("[Import] Complete: %d imported, %d skipped", summary.Imported, summary.Skipped)
	return nil
}

type marketImporter struct {
	directory *services.DirectoryService
	harvests  *services.HarvestService
	demands   *services.DemandService
	strict    bool
}

func (m *marketImporter) Run(market *MarketImport) (*importSummary, error) {
	summary := &importSummary{}

	skip := func(kind string, i int, err error) error {
		if m.strict {
			return fmt.Errorf("import failed for %s #%d: %w", kind, i+1, err)
		}
		log.Printf("[Import] Skipped %s #%d: %v", kind, i+1, err)
		summary.Skipped++
		return nil
	}

	farmerIDs := make([]uint, len(market.Farmers))
	for i, f := range market.Farmers {
		if f.Name == "" {
			if err := skip("farmer", i, fmt.Errorf("empty name")); err != nil {
				return nil, err
			}
			continue
		}
		farmer, err := m.directory.RegisterFarmer(f.Name, f.Phone, f.Location)
		if err != nil {
			return nil, fmt.Errorf("failed to register farmer %s: %w", f.Name, err)
		}
		farmerIDs[i] = farmer.ID
		summary.Imported++
	}

	buyerIDs := make([]uint, len(market.Buyers))
	for i, b := range market.Buyers {
		if b.Name == "" {
			if err := skip("buyer", i, fmt.Errorf("empty name")); err != nil {
				return nil, err
			}
			continue
		}
		buyer, err := m.directory.RegisterBuyer(b.Name, b.Phone, b.Location)
		if err != nil {
			return nil, fmt.Errorf("failed to register buyer %s: %w", b.Name, err)
		}
		buyerIDs[i] = buyer.ID
		summary.Imported++
	}

	for i, h := range market.Harvests {
		farmerID := lookupRef(farmerIDs, h.Farmer)
		expected, err := time.Parse("2006-01-02", h.ExpectedHarvestDate)
		if err != nil {
			if err := skip("harvest", i, fmt.Errorf("invalid expected_harvest_date %q", h.ExpectedHarvestDate)); err != nil {
				return nil, err
			}
			continue
		}

		harvest, days, err := m.harvests.AddHarvest(farmerID, h.CropName, h.Quantity, expected)
		if err != nil {
			if err := skip("harvest", i, err); err != nil {
				return nil, err
			}
			continue
		}
		log.Printf("[Import] Harvest %d: %s x%g, %d days out, score %d", harvest.ID, harvest.CropName, harvest.Quantity, days, harvest.HarvestScore)
		summary.Imported++
	}

	for i, d := range market.Demands {
		if _, err := m.demands.AddDemand(lookupRef(buyerIDs, d.Buyer), d.CropName, d.QuantityRequired); err != nil {
			if err := skip("demand", i, err); err != nil {
				return nil, err
			}
			continue
		}
		summary.Imported++
	}

	return summary, nil
}

// lookupRef resolves a 1-based file position to a store ID. Zero means the
// reference did not resolve, which the services report as not found.
func lookupRef(ids []uint, ref int) uint {
	if ref < 1 || ref > len(ids) {
		return 0
	}
	return ids[ref-1]
}
