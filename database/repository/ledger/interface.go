// File: database/repository/ledger/interface.go
package ledgerRepo

import (
	"context"
	"sync"

	"goodfoods/config"
	"goodfoods/models"
)

type LedgerRepository interface {
	All(ctx context.Context) ([]models.Booking, error)
	BookedSeats(ctx context.Context, restaurantID int, date, slot string) (int, error)
	AppendIfAvailable(ctx context.Context, booking models.Booking, capacity int) (int, bool, error)
}

type fileLedgerRepo struct {
	path string
	mu   sync.Mutex
}

// NewFileLedgerRepo constructs a LedgerRepository backed by the JSON
// ledger file configured in LEDGER_PATH. The mutex serialises
// check-and-append within this process; concurrent writers from other
// processes are not coordinated.
func NewFileLedgerRepo() LedgerRepository {
	return &fileLedgerRepo{path: config.AppConfig.LedgerPath}
}

// NewFileLedgerRepoAt constructs a LedgerRepository for an explicit path.
func NewFileLedgerRepoAt(path string) LedgerRepository {
	return &fileLedgerRepo{path: path}
}
