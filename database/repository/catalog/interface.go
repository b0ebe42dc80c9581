// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"goodfoods/config"
	"goodfoods/models"
)

type CatalogRepository interface {
	All() []models.Restaurant
	ByID(id int) (*models.Restaurant, error)
	ReplaceAll(restaurants []models.Restaurant) error
}

type fileCatalogRepo struct {
	path string
}

// NewFileCatalogRepo constructs a CatalogRepository backed by the JSON
// catalog file configured in CATALOG_PATH.
func NewFileCatalogRepo() CatalogRepository {
	return &fileCatalogRepo{path: config.AppConfig.CatalogPath}
}

// NewFileCatalogRepoAt constructs a CatalogRepository for an explicit path.
func NewFileCatalogRepoAt(path string) CatalogRepository {
	return &fileCatalogRepo{path: path}
}
