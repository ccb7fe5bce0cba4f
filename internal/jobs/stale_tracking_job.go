package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleTrackingJob watches orders that are out for delivery and flags the
// ones whose courier has gone quiet. Runs every 30 seconds and logs a
// warning for every en-route order without a fresh position report, so
// operators notice a dead device or a closed app before the customer does.
type StaleTrackingJob struct {
	uowFactory commands.OrderUoWFactory
	threshold  time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleTrackingJob creates a job that flags en-route orders whose last
// position report is older than threshold.
func NewStaleTrackingJob(uowFactory commands.OrderUoWFactory, threshold time.Duration, logger *slog.Logger) *StaleTrackingJob {
	return &StaleTrackingJob{
		uowFactory: uowFactory,
		threshold:  threshold,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_tracking_job"),
	}
}

// Start begins the stale tracking job to run every 30 seconds.
func (j *StaleTrackingJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		if err := j.check(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale tracking check failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale tracking job started (running every 30 seconds)")
	return nil
}

// Stop stops the stale tracking job.
func (j *StaleTrackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale tracking job stopped")
}

func (j *StaleTrackingJob) check(ctx context.Context) error {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	enRoute, err := uow.OrderRepository().GetAllEnRoute(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-j.threshold)
	for _, aggregate := range enRoute {
		courierID := ""
		if id := aggregate.Courier(); id != nil {
			courierID = id.String()
		}

		last := aggregate.LastKnownLocation()
		if last == nil {
			j.logger.WarnContext(ctx, "En-route order has never reported a position",
				"order_id", aggregate.ID().String(),
				"courier_id", courierID)
			continue
		}

		if last.ReportedAt().Before(cutoff) {
			j.logger.WarnContext(ctx, "En-route order has a stale position",
				"order_id", aggregate.ID().String(),
				"courier_id", courierID,
				"last_reported_at", last.ReportedAt(),
				"age", time.Since(last.ReportedAt()).Round(time.Second))
		}
	}

	return nil
}
