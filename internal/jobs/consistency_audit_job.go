package jobs

import (
	"context"
	"log/slog"

	"manufacturing/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ConsistencyAuditJob runs the consistency report on a schedule and logs the
// findings. Runs hourly; the audit reads every order and inquiry, so it is
// deliberately not a high-frequency job.
type ConsistencyAuditJob struct {
	handler queries.GetConsistencyReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewConsistencyAuditJob creates a new job for auditing status consistency.
func NewConsistencyAuditJob(
	handler queries.GetConsistencyReportQueryHandler, logger *slog.Logger,
) *ConsistencyAuditJob {
	return &ConsistencyAuditJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "consistency_audit_job"),
	}
}

// Start begins the consistency audit job to run every hour.
func (j *ConsistencyAuditJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		query := queries.NewGetConsistencyReportQuery()

		report, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Consistency audit job failed", "error", err)
			return
		}

		for _, finding := range report.Errors {
			j.logger.ErrorContext(ctx, "Consistency error", "finding", finding)
		}
		for _, finding := range report.Warnings {
			j.logger.WarnContext(ctx, "Consistency warning", "finding", finding)
		}

		j.logger.InfoContext(ctx, "Consistency audit completed",
			"consistent", report.IsConsistent,
			"checked_orders", report.CheckedOrders,
			"checked_inquiries", report.CheckedInquiries,
			"errors", len(report.Errors),
			"warnings", len(report.Warnings))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Consistency audit job started (running hourly)")
	return nil
}

// Stop stops the consistency audit job.
func (j *ConsistencyAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Consistency audit job stopped")
}
