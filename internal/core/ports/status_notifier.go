package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/history"
)

// StatusNotifier publishes accepted status changes to interested consumers
// (notification service, dashboards). Publishing happens after commit; a
// notifier failure must not roll back the change, only be logged.
type StatusNotifier interface {
	NotifyStatusChanged(ctx context.Context, record history.ChangeRecord) error
}
