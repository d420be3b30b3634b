package jobs

import (
	"context"
	"log/slog"
	"time"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// Staleness thresholds per watched status. Inquiry thresholds mirror the
// consistency checker; production orders get a longer leash because long
// production runs are normal.
const (
	staleNewInquiryThreshold        = 7 * 24 * time.Hour
	staleInProgressInquiryThreshold = 30 * 24 * time.Hour
	staleProductionOrderThreshold   = 60 * 24 * time.Hour
)

// StaleStatusJob watches the ledger for entities stuck in a status. Runs every
// 10 minutes and logs a warning per stale entity; acting on the findings is an
// operator's job, not this one's.
type StaleStatusJob struct {
	ledger services.StatusHistoryLedger
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStaleStatusJob creates a new job for detecting stale statuses.
func NewStaleStatusJob(store ports.StatusChangeStore, logger *slog.Logger) *StaleStatusJob {
	return &StaleStatusJob{
		ledger: services.NewStatusHistoryLedger(store),
		cron:   cron.New(),
		logger: logger.With("component", "stale_status_job"),
	}
}

// Start begins the stale status job to run every 10 minutes.
func (j *StaleStatusJob) Start() error {
	_, err := j.cron.AddFunc("@every 10m", func() {
		ctx := context.Background()
		j.report(ctx, history.EntityTypeInquiry, "new", staleNewInquiryThreshold)
		j.report(ctx, history.EntityTypeInquiry, "in_progress", staleInProgressInquiryThreshold)
		j.report(ctx, history.EntityTypeOrder, "production", staleProductionOrderThreshold)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale status job started (running every 10 minutes)")
	return nil
}

// Stop stops the stale status job.
func (j *StaleStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale status job stopped")
}

func (j *StaleStatusJob) report(
	ctx context.Context, entityType history.EntityType, status string, maxHeld time.Duration,
) {
	stale, err := j.ledger.FindStaleInStatus(ctx, entityType, status, maxHeld)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale status job failed", "entity_type", entityType,
			"status", status, "error", err)
		return
	}

	for _, entity := range stale {
		j.logger.WarnContext(ctx, "Entity stuck in status",
			"entity_type", entityType,
			"entity_id", entity.EntityID,
			"status", entity.Status,
			"since", entity.Since,
			"held", entity.Held)
	}
}
