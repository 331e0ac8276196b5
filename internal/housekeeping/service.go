// filepath: internal/housekeeping/service.go
package housekeeping

import (
	"context"
	"flowershop/internal/logging"
	"time"
)

// MinCheckInterval is the minimum time between sweeps to prevent busy-looping.
const MinCheckInterval = 1 * time.Minute

// Service runs the orphan sweep periodically in the background.
type Service struct {
	Deps     Dependencies
	Interval time.Duration
	timer    *time.Timer
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewService creates a new background sweeper. Intervals below MinCheckInterval are raised to it.
func NewService(deps Dependencies, interval time.Duration) *Service {
	if interval < MinCheckInterval {
		interval = MinCheckInterval
	}
	return &Service{
		Deps:     deps,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start kicks off the background sweep. The first run happens after one interval.
func (s *Service) Start() {
	logging.Log.Infof("Starting background orphan sweep every %v.", s.Interval)
	s.timer = time.NewTimer(s.Interval)

	go func() {
		defer close(s.doneCh)
		for {
			select {
			case <-s.timer.C:
				s.runOnce()
				s.timer.Reset(s.Interval)
			case <-s.stopCh:
				s.timer.Stop()
				return
			}
		}
	}()
}

// Stop terminates the background sweep and waits for a running sweep to finish.
func (s *Service) Stop() {
	if s.timer == nil {
		return
	}
	logging.Log.Info("Stopping background orphan sweep.")
	close(s.stopCh)
	<-s.doneCh
}

func (s *Service) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.Interval)
	defer cancel()

	if _, err := RunOrphanSweep(ctx, s.Deps, false); err != nil {
		logging.Log.Errorf("Background orphan sweep failed: %v", err)
	}
}
