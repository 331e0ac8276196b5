// filepath: internal/services/housekeeping_service.go
package services

import (
	"context"
	"flowershop/internal/housekeeping"
	"flowershop/internal/logging"
	"flowershop/internal/models"
	"time"
)

var _ HousekeepingService = (*housekeepingService)(nil)

// housekeepingService manages the optional background orphan sweep and
// provides a method for manual triggering.
type housekeepingService struct {
	interval   time.Duration
	worker     *housekeeping.Service
	workerDeps housekeeping.Dependencies
}

// NewHousekeepingService creates a new HousekeepingService. An interval of zero
// disables the background worker; TriggerSweep always works.
func NewHousekeepingService(catalog CatalogStore, blobs BlobStore, interval, minAge time.Duration) *housekeepingService {
	return &housekeepingService{
		interval: interval,
		workerDeps: housekeeping.Dependencies{
			Catalog: catalog,
			Storage: blobs,
			MinAge:  minAge,
		},
	}
}

// Start begins the background sweep if an interval is configured.
func (s *housekeepingService) Start() {
	if s.interval <= 0 {
		logging.Log.Debug("Background orphan sweep disabled.")
		return
	}
	s.worker = housekeeping.NewService(s.workerDeps, s.interval)
	s.worker.Start()
}

// Stop terminates the background sweep.
func (s *housekeepingService) Stop() {
	if s.worker != nil {
		s.worker.Stop()
	}
}

// TriggerSweep runs the orphan sweep once.
func (s *housekeepingService) TriggerSweep(ctx context.Context, dryRun bool) (*models.OrphanReport, error) {
	report, err := housekeeping.RunOrphanSweep(ctx, s.workerDeps, dryRun)
	if err != nil {
		return nil, storeError("orphan sweep", err)
	}
	return report, nil
}
