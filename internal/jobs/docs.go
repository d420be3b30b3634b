// Package jobs provides scheduled background tasks for the status service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic auditing the status subsystem requires.
//
// # Available Jobs
//
// 1. ConsistencyAuditJob - Runs hourly to audit every order and inquiry for
// inconsistent or missing milestone data
// 2. StaleStatusJob - Runs every 10 minutes to find entities stuck in a status
// past its threshold (new and in_progress inquiries, production orders)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(consistencyReportHandler, statusChangeStore, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs are observers: they log findings through slog and never mutate
// state. A failed run is logged and retried on the next tick.
package jobs
