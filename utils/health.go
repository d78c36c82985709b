package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is the slice of the calendar store the health monitor needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents the current status of the calendar backend.
type HealthStatus struct {
	Calendar  bool      `json:"calendar"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic checks against the calendar backend
// and updates the in-memory snapshot.
func StartHealthMonitor(store Pinger) {
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		ok := store.Ping(ctx) == nil

		healthMu.Lock()
		currentHealth = HealthStatus{
			Calendar:  ok,
			CheckedAt: time.Now(),
		}
		healthMu.Unlock()
	}

	go func() {
		probe()

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}
