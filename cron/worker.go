package cron

import (
	"log"
	"time"

	"goodfoods/services/session"
)

// Sweepable is implemented by session stores that need in-process
// cleanup. The Redis store expires keys server-side and is skipped.
type Sweepable interface {
	PruneExpired() int
}

// InitSessionSweeper runs a background janitor that evicts expired chat
// sessions from the store at the given interval.
func InitSessionSweeper(store session.Store, interval time.Duration) {
	sweeper, ok := store.(Sweepable)
	if !ok {
		return
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	go func() {
		log.Printf("[SessionSweeper] 🧹 Sweeping expired sessions every %s", interval)
		for {
			time.Sleep(interval)
			if removed := sweeper.PruneExpired(); removed > 0 {
				log.Printf("[SessionSweeper] Removed %d expired sessions", removed)
			}
		}
	}()
}
