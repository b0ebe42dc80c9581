// File: database/repository/catalog/crud_test.go
package catalogRepo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goodfoods/database"
	"goodfoods/models"
)

func seedCatalog(t *testing.T) {
	t.Helper()
	previous := database.CatalogData
	database.CatalogData = []models.Restaurant{
		{ID: 1, Name: "Toit", City: "Bangalore", Rating: 4.6, Capacity: 50},
		{ID: 2, Name: "Trishna", City: "Mumbai", Rating: 4.6, Capacity: 40},
	}
	t.Cleanup(func() { database.CatalogData = previous })
}

// TestAll_CopiesCatalog verifies callers get a copy, not the shared
// in-memory slice.
func TestAll_CopiesCatalog(t *testing.T) {
	seedCatalog(t)
	repo := NewFileCatalogRepoAt(filepath.Join(t.TempDir(), "restaurants.json"))

	all := repo.All()
	require.Len(t, all, 2)

	all[0].Name = "mutated"
	assert.Equal(t, "Toit", database.CatalogData[0].Name)
}

// TestByID_FindsAndMisses verifies lookup by catalog id.
func TestByID_FindsAndMisses(t *testing.T) {
	seedCatalog(t)
	repo := NewFileCatalogRepoAt(filepath.Join(t.TempDir(), "restaurants.json"))

	r, err := repo.ByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Trishna", r.Name)

	_, err = repo.ByID(999)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

// TestReplaceAll_PersistsAndRefreshes verifies the catalog file and the
// in-memory copy update together.
func TestReplaceAll_PersistsAndRefreshes(t *testing.T) {
	seedCatalog(t)
	path := filepath.Join(t.TempDir(), "restaurants.json")
	repo := NewFileCatalogRepoAt(path)

	updated := []models.Restaurant{
		{ID: 1, Name: "Toit", City: "Bangalore", Rating: 4.6, PricePerPerson: 900, Capacity: 50},
	}
	require.NoError(t, repo.ReplaceAll(updated))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var fromFile []models.Restaurant
	require.NoError(t, json.Unmarshal(raw, &fromFile))
	require.Len(t, fromFile, 1)
	assert.Equal(t, 900, fromFile[0].PricePerPerson)

	assert.Len(t, database.CatalogData, 1)

	// No temp files left behind by the atomic write.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
