package session

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-portal/internal/logger"
)

// Janitor periodically sweeps expired sessions out of a Manager so the
// in-memory store does not grow with abandoned logins. It implements the
// background worker contract of the workers package.
type Janitor struct {
	manager  *Manager
	interval time.Duration

	logger *logger.Logger
}

// NewJanitor constructs a janitor sweeping the given manager every interval.
func NewJanitor(manager *Manager, interval time.Duration, log *logger.Logger) *Janitor {
	return &Janitor{
		manager:  manager,
		interval: interval,
		logger:   log,
	}
}

// Run sweeps on every tick until ctx is cancelled.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := j.manager.Sweep(); removed > 0 {
				j.logger.Debug().Int("removed", removed).Msg("expired sessions swept")
			}
		}
	}
}
