package maintenance

import (
	"context"
	"time"
)

// DefaultSweepInterval is how often expired holds are swept when the
// configuration does not override it.
const DefaultSweepInterval = 20 * time.Minute

// markPastInterval is how often elapsed reservations are moved to PAST.
const markPastInterval = 24 * time.Hour

// Runner drives the maintenance jobs on tickers until its context is
// cancelled.
type Runner struct {
	service       *Service
	sweepInterval time.Duration
	logger        Logger
}

// NewRunner creates a runner. A non-positive sweepInterval falls back to
// DefaultSweepInterval.
func NewRunner(service *Service, sweepInterval time.Duration, logger Logger) *Runner {
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	return &Runner{
		service:       service,
		sweepInterval: sweepInterval,
		logger:        logger,
	}
}

// Run blocks, firing both jobs on their tickers, until ctx is cancelled.
// Each tick runs one bounded batch; a failed tick is logged by the service
// and retried on the next one.
func (r *Runner) Run(ctx context.Context) {
	r.logger.Info("maintenance: runner started, sweep every %s", r.sweepInterval)

	sweepTicker := time.NewTicker(r.sweepInterval)
	defer sweepTicker.Stop()

	markPastTicker := time.NewTicker(markPastInterval)
	defer markPastTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("maintenance: runner stopped")
			return
		case <-sweepTicker.C:
			_, _ = r.service.SweepExpiredRequests(ctx)
		case <-markPastTicker.C:
			_, _ = r.service.MarkPastReservations(ctx)
		}
	}
}
