package database

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"goodfoods/config"
	"goodfoods/models"
)

// CatalogData holds the restaurant catalog loaded at startup.
var CatalogData []models.Restaurant

// InitDataFiles loads the restaurant catalog into memory and makes sure
// the bookings ledger file exists.
func InitDataFiles() {
	raw, err := os.ReadFile(config.AppConfig.CatalogPath)
	if err != nil {
		log.Fatalf("failed to read restaurant catalog: %v", err)
	}
	var restaurants []models.Restaurant
	if err := json.Unmarshal(raw, &restaurants); err != nil {
		log.Fatalf("failed to parse restaurant catalog: %v", err)
	}
	CatalogData = restaurants

	if err := EnsureLedgerFile(config.AppConfig.LedgerPath); err != nil {
		log.Fatalf("failed to prepare bookings ledger: %v", err)
	}
	log.Printf("Loaded %d restaurants from %s", len(restaurants), config.AppConfig.CatalogPath)
}

// EnsureLedgerFile creates an empty ledger (a JSON array) when none exists.
func EnsureLedgerFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte("[]"), 0o644)
}
