package utils

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external dependencies.
type HealthStatus struct {
	Redis     []bool    `json:"redis"`
	Catalog   bool      `json:"catalog"`
	Ledger    bool      `json:"ledger"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// The ledger file is created lazily, so a missing file with a writable parent
// directory still counts as healthy.
func StartHealthMonitor(redisClients []*redis.Client, catalogPath, ledgerPath string) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			var redisHealth []bool

			for _, client := range redisClients {
				err := client.Ping(ctx).Err()
				redisHealth = append(redisHealth, err == nil)
			}

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisHealth,
				Catalog:   fileUsable(catalogPath),
				Ledger:    fileUsable(ledgerPath),
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}

func fileUsable(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	}
	info, err := os.Stat(filepath.Dir(path))
	return err == nil && info.IsDir()
}
