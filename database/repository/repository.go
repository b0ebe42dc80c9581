package repository

import (
	catalogRepo "goodfoods/database/repository/catalog"
	ledgerRepo "goodfoods/database/repository/ledger"
)

// Re-export the CatalogRepository interface and constructors.
type CatalogRepository = catalogRepo.CatalogRepository

var NewFileCatalogRepo = catalogRepo.NewFileCatalogRepo

var NewFileCatalogRepoAt = catalogRepo.NewFileCatalogRepoAt

// Re-export the LedgerRepository interface and constructors.
type LedgerRepository = ledgerRepo.LedgerRepository

var NewFileLedgerRepo = ledgerRepo.NewFileLedgerRepo

var NewFileLedgerRepoAt = ledgerRepo.NewFileLedgerRepoAt
