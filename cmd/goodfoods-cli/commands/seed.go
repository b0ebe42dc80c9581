// File: cmd/goodfoods-cli/commands/seed.go
package commands

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"goodfoods/config"
	catalogRepo "goodfoods/database/repository/catalog"
	"goodfoods/models"

	"github.com/spf13/cobra"
)

var seedFile string

// priceBands maps a price range symbol to the per-person price band in rupees.
var priceBands = map[string][2]int{
	"₹":   {200, 400},
	"₹₹":  {600, 1200},
	"₹₹₹": {1500, 3000},
}

var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill in derived catalog fields",
	Long: `Assigns a price_per_person to every restaurant in the catalog. Each price
is drawn from the band matching the restaurant's price range symbol, seeded
by the restaurant id, so repeated runs produce the same catalog.`,
	Run: runSeed,
}

func init() {
	SeedCmd.Flags().StringVar(&seedFile, "file", "", "catalog file to seed (defaults to CATALOG_PATH)")
}

func runSeed(cmd *cobra.Command, args []string) {
	config.LoadConfig()

	path := seedFile
	if path == "" {
		path = config.AppConfig.CatalogPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading catalog: %v\n", err)
		os.Exit(1)
	}
	var restaurants []models.Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		fmt.Printf("Error parsing catalog: %v\n", err)
		os.Exit(1)
	}

	for i := range restaurants {
		price, err := seedPrice(restaurants[i])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		restaurants[i].PricePerPerson = price
	}

	if err := catalogRepo.NewFileCatalogRepoAt(path).ReplaceAll(restaurants); err != nil {
		fmt.Printf("Error writing catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Seeded price_per_person for %d restaurants in %s\n", len(restaurants), path)
}

// seedPrice derives a stable per-person price for a restaurant. The draw is
// seeded by restaurant id so the same restaurant always gets the same price,
// rounded to the nearest 50.
func seedPrice(r models.Restaurant) (int, error) {
	band, ok := priceBands[r.PriceRange]
	if !ok {
		return 0, fmt.Errorf("restaurant %d has unknown price range %q", r.ID, r.PriceRange)
	}
	rng := rand.New(rand.NewSource(int64(r.ID)))
	price := band[0] + rng.Intn(band[1]-band[0]+1)
	return (price + 25) / 50 * 50, nil
}
