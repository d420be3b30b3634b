package jobs

import (
	"fmt"
	"log/slog"

	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	consistencyAuditJob *ConsistencyAuditJob
	staleStatusJob      *StaleStatusJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	consistencyReportHandler queries.GetConsistencyReportQueryHandler,
	statusChangeStore ports.StatusChangeStore,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		consistencyAuditJob: NewConsistencyAuditJob(consistencyReportHandler, logger),
		staleStatusJob:      NewStaleStatusJob(statusChangeStore, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.consistencyAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start consistency audit job: %w", err)
	}

	if err := jm.staleStatusJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.consistencyAuditJob.Stop()
		return fmt.Errorf("failed to start stale status job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleStatusJob.Stop()
	jm.consistencyAuditJob.Stop()
}
