// File: database/repository/catalog/crud.go
package catalogRepo

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"goodfoods/database"
	"goodfoods/models"
)

// ErrRestaurantNotFound is returned when an id has no catalog entry.
var ErrRestaurantNotFound = errors.New("restaurant not found")

func (r *fileCatalogRepo) All() []models.Restaurant {
	out := make([]models.Restaurant, len(database.CatalogData))
	copy(out, database.CatalogData)
	return out
}

func (r *fileCatalogRepo) ByID(id int) (*models.Restaurant, error) {
	for _, rest := range database.CatalogData {
		if rest.ID == id {
			found := rest
			return &found, nil
		}
	}
	return nil, ErrRestaurantNotFound
}

// ReplaceAll rewrites the catalog file and the in-memory copy. The file
// is written to a temp sibling first and renamed into place so readers
// never observe a half-written catalog.
func (r *fileCatalogRepo) ReplaceAll(restaurants []models.Restaurant) error {
	data, err := json.MarshalIndent(restaurants, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".restaurants-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	database.CatalogData = restaurants
	return nil
}
