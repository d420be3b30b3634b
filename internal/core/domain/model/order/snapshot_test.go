package order_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_ActiveQuotation(t *testing.T) {
	until := time.Now().Add(24 * time.Hour)
	snap := order.Snapshot{
		Quotations: []order.QuotationRef{
			{ID: kernel.NewUUID(), ValidUntil: until, IsActive: false},
			{ID: kernel.NewUUID(), ValidUntil: until, IsActive: true},
		},
	}

	active := snap.ActiveQuotation()

	require.NotNil(t, active)
	assert.True(t, active.IsActive)
	assert.Nil(t, order.Snapshot{}.ActiveQuotation())
}

func TestSnapshot_WithMilestone(t *testing.T) {
	snap := order.Snapshot{ID: kernel.NewUUID(), OrderNumber: "MO-1", CreatedAt: time.Now()}
	at := time.Now()

	stamped := snap.WithMilestone(order.MilestoneShipped, at)

	require.NotNil(t, stamped.ShippedAt)
	assert.Equal(t, at, *stamped.ShippedAt)
	assert.Nil(t, snap.ShippedAt, "receiver must stay untouched")
}

func TestSnapshot_MilestoneAt(t *testing.T) {
	at := time.Now()
	snap := order.Snapshot{ConfirmedAt: &at}

	require.NotNil(t, snap.MilestoneAt(order.MilestoneConfirmed))
	assert.Equal(t, at, *snap.MilestoneAt(order.MilestoneConfirmed))
	assert.Nil(t, snap.MilestoneAt(order.MilestoneDelivered))
	assert.Nil(t, snap.MilestoneAt(order.MilestoneUnknown))
}
