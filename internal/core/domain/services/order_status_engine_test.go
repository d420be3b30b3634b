package services_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func tsPtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed := ts(t, value)
	return &parsed
}

func baseOrderSnapshot(t *testing.T) order.Snapshot {
	t.Helper()
	return order.Snapshot{
		ID:          kernel.NewUUID(),
		OrderNumber: "MO-2025-001",
		CreatedAt:   ts(t, "2025-01-01T09:00:00Z"),
	}
}

func TestOrderStatusEngine_ComputeStatus(t *testing.T) {
	engine := services.NewOrderStatusEngine()

	t.Run("no lifecycle fields yields requested", func(t *testing.T) {
		result := engine.ComputeStatus(baseOrderSnapshot(t))

		assert.Equal(t, order.Requested, result.Status)
		assert.Contains(t, result.Factors, "no lifecycle fields set")
		assert.False(t, result.IsTerminal)
	})

	t.Run("canceled wins over every other field", func(t *testing.T) {
		snap := baseOrderSnapshot(t)
		snap.QuotedAt = tsPtr(t, "2025-01-02T09:00:00Z")
		snap.ConfirmedAt = tsPtr(t, "2025-01-03T09:00:00Z")
		snap.ProductionStartedAt = tsPtr(t, "2025-01-04T09:00:00Z")
		snap.CompletedAt = tsPtr(t, "2025-01-05T09:00:00Z")
		snap.ShippedAt = tsPtr(t, "2025-01-06T09:00:00Z")
		snap.DeliveredAt = tsPtr(t, "2025-01-07T09:00:00Z")
		snap.CanceledAt = tsPtr(t, "2025-01-08T09:00:00Z")

		result := engine.ComputeStatus(snap)

		assert.Equal(t, order.Canceled, result.Status)
		assert.Contains(t, result.Factors, "canceled_at is set")
		assert.True(t, result.IsTerminal)
		assert.Empty(t, result.CanTransitionTo)
	})

	t.Run("delivered beats shipped", func(t *testing.T) {
		snap := baseOrderSnapshot(t)
		snap.ShippedAt = tsPtr(t, "2025-01-06T09:00:00Z")
		snap.DeliveredAt = tsPtr(t, "2025-01-07T09:00:00Z")

		result := engine.ComputeStatus(snap)

		assert.Equal(t, order.Delivered, result.Status)
		assert.False(t, result.IsTerminal, "delivered can still be canceled")
		assert.Equal(t, []order.Status{order.Canceled}, result.CanTransitionTo)
	})

	t.Run("completed lifecycle scenario", func(t *testing.T) {
		snap := baseOrderSnapshot(t)
		snap.QuotedAt = tsPtr(t, "2025-01-02T09:00:00Z")
		snap.ConfirmedAt = tsPtr(t, "2025-01-03T09:00:00Z")
		snap.ProductionStartedAt = tsPtr(t, "2025-01-04T09:00:00Z")
		snap.CompletedAt = tsPtr(t, "2025-01-05T09:00:00Z")

		result := engine.ComputeStatus(snap)

		assert.Equal(t, order.Completed, result.Status)
		assert.Contains(t, result.Factors, "completed_at is set")
	})

	t.Run("production from timestamp", func(t *testing.T) {
		snap := baseOrderSnapshot(t)
		snap.ProductionStartedAt = tsPtr(t, "2025-01-04T09:00:00Z")

		result := engine.ComputeStatus(snap)

		assert.Equal(t, order.Production, result.Status)
		assert.Contains(t, result.Factors, "production_started_at is set")
	})

	t.Run("production from stage reference alone", func(t *testing.T) {
		snap := baseOrderSnapshot(t)
		stage := kernel.NewUUID()
		snap.ProductionStageID = &stage

		result := engine.ComputeStatus(snap)

		assert.Equal(t, order.Production, result.Status)
		assert.Contains(t, result.Factors, "production_stage_id is set")
	})

	t.Run("quoted from quoted_at without quotations", func(t *testing.T) {
		snap := baseOrderSnapshot(t)
		snap.QuotedAt = tsPtr(t, "2025-01-02T09:00:00Z")

		result := engine.ComputeStatus(snap)

		assert.Equal(t, order.Quoted, result.Status)
		assert.Contains(t, result.Factors, "quoted_at is set")
	})

	t.Run("deterministic for identical snapshots", func(t *testing.T) {
		snap := baseOrderSnapshot(t)
		snap.ConfirmedAt = tsPtr(t, "2025-01-03T09:00:00Z")

		first := engine.ComputeStatus(snap)
		second := engine.ComputeStatus(snap)

		assert.Equal(t, first.Status, second.Status)
		assert.Equal(t, first.Factors, second.Factors)
	})
}

func TestOrderStatusEngine_QuotationExpiry(t *testing.T) {
	now := ts(t, "2025-06-01T12:00:00Z")
	engine := services.NewOrderStatusEngineWithClock(func() time.Time { return now })

	snapWithQuotation := func(validUntil time.Time) order.Snapshot {
		snap := baseOrderSnapshot(t)
		snap.Quotations = []order.QuotationRef{
			{ID: kernel.NewUUID(), ValidUntil: validUntil, IsActive: true},
		}
		return snap
	}

	t.Run("active quotation in the future is quoted", func(t *testing.T) {
		result := engine.ComputeStatus(snapWithQuotation(now.Add(time.Hour)))
		assert.Equal(t, order.Quoted, result.Status)
	})

	t.Run("valid_until exactly now is still quoted", func(t *testing.T) {
		// Strict before-comparison: the boundary instant has not expired yet.
		result := engine.ComputeStatus(snapWithQuotation(now))
		assert.Equal(t, order.Quoted, result.Status)
	})

	t.Run("one microsecond past is expired", func(t *testing.T) {
		result := engine.ComputeStatus(snapWithQuotation(now.Add(-time.Microsecond)))
		assert.Equal(t, order.Expired, result.Status)
		require.Len(t, result.Factors, 1)
		assert.Contains(t, result.Factors[0], "active quotation expired")
	})

	t.Run("inactive quotations are ignored", func(t *testing.T) {
		snap := baseOrderSnapshot(t)
		snap.Quotations = []order.QuotationRef{
			{ID: kernel.NewUUID(), ValidUntil: now.Add(-time.Hour), IsActive: false},
		}

		result := engine.ComputeStatus(snap)
		assert.Equal(t, order.Requested, result.Status)
	})

	t.Run("confirmed_at outranks an expired quotation", func(t *testing.T) {
		snap := snapWithQuotation(now.Add(-time.Hour))
		snap.ConfirmedAt = tsPtr(t, "2025-05-01T09:00:00Z")

		result := engine.ComputeStatus(snap)
		assert.Equal(t, order.Confirmed, result.Status)
	})
}

func TestOrderStatusEngine_ValidateSnapshot(t *testing.T) {
	engine := services.NewOrderStatusEngine()

	t.Run("well-formed snapshot has no problems", func(t *testing.T) {
		assert.Empty(t, engine.ValidateSnapshot(baseOrderSnapshot(t)))
	})

	t.Run("missing required fields", func(t *testing.T) {
		problems := engine.ValidateSnapshot(order.Snapshot{})

		assert.Contains(t, problems, "id is required")
		assert.Contains(t, problems, "order_number is required")
		assert.Contains(t, problems, "created_at is required")
	})

	t.Run("date ordering violations", func(t *testing.T) {
		snap := baseOrderSnapshot(t)
		snap.QuotedAt = tsPtr(t, "2025-01-05T09:00:00Z")
		snap.ConfirmedAt = tsPtr(t, "2025-01-04T09:00:00Z")
		snap.ShippedAt = tsPtr(t, "2025-01-08T09:00:00Z")
		snap.DeliveredAt = tsPtr(t, "2025-01-07T09:00:00Z")

		problems := engine.ValidateSnapshot(snap)

		assert.Contains(t, problems, "confirmed_at must not precede quoted_at")
		assert.Contains(t, problems, "delivered_at must not precede shipped_at")
	})

	t.Run("completed before production start", func(t *testing.T) {
		snap := baseOrderSnapshot(t)
		snap.ProductionStartedAt = tsPtr(t, "2025-01-05T09:00:00Z")
		snap.CompletedAt = tsPtr(t, "2025-01-04T09:00:00Z")

		problems := engine.ValidateSnapshot(snap)

		assert.Contains(t, problems, "completed_at must not precede production_started_at")
	})
}
