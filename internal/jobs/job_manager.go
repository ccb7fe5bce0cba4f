// Package jobs provides the scheduled background tasks of the dispatch
// service, implemented on github.com/robfig/cron/v3.
//
// The only job today is StaleTrackingJob, which audits en-route orders
// for missing or outdated courier position reports. Jobs are coordinated
// through JobManager:
//
//	jobManager := jobs.NewJobManager(orderUoWFactory, staleThreshold, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleTrackingJob *StaleTrackingJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(uowFactory commands.OrderUoWFactory, staleThreshold time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		staleTrackingJob: NewStaleTrackingJob(uowFactory, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleTrackingJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale tracking job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleTrackingJob.Stop()
}
