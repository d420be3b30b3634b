package order_test

import (
	"testing"

	"manufacturing/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:    "unknown",
		order.Requested:  "requested",
		order.Quoted:     "quoted",
		order.Expired:    "expired",
		order.Confirmed:  "confirmed",
		order.Production: "production",
		order.Completed:  "completed",
		order.Shipped:    "shipped",
		order.Delivered:  "delivered",
		order.Canceled:   "canceled",
	}

	for status, label := range cases {
		assert.Equal(t, label, status.String())
	}

	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips every defined status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Requested, order.Quoted, order.Expired, order.Confirmed,
			order.Production, order.Completed, order.Shipped, order.Delivered, order.Canceled,
		} {
			got, ok := order.StatusFromString(s.String())
			require.True(t, ok, "label %q", s.String())
			assert.Equal(t, s, got)
		}
	})

	t.Run("rejects unknown labels", func(t *testing.T) {
		_, ok := order.StatusFromString("teleported")
		assert.False(t, ok)

		_, ok = order.StatusFromString("unknown")
		assert.False(t, ok)
	})
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, order.IsTerminal(order.Canceled))
	assert.False(t, order.IsTerminal(order.Delivered), "delivered can still be canceled")
	assert.False(t, order.IsTerminal(order.Requested))
	assert.False(t, order.IsTerminal(order.Unknown))
}

func TestNextStatuses(t *testing.T) {
	t.Run("canceled has no outgoing transitions", func(t *testing.T) {
		assert.Empty(t, order.NextStatuses(order.Canceled))
	})

	t.Run("delivered can only be canceled", func(t *testing.T) {
		assert.Equal(t, []order.Status{order.Canceled}, order.NextStatuses(order.Delivered))
	})

	t.Run("returns a copy", func(t *testing.T) {
		first := order.NextStatuses(order.Quoted)
		first[0] = order.Unknown
		assert.NotEqual(t, first, order.NextStatuses(order.Quoted))
	})

	t.Run("undefined status has none", func(t *testing.T) {
		assert.Empty(t, order.NextStatuses(order.Status(42)))
	})
}

func TestIsValidTransition(t *testing.T) {
	valid := [][2]order.Status{
		{order.Requested, order.Quoted},
		{order.Quoted, order.Confirmed},
		{order.Quoted, order.Expired},
		{order.Expired, order.Quoted},
		{order.Confirmed, order.Production},
		{order.Production, order.Completed},
		{order.Completed, order.Shipped},
		{order.Shipped, order.Delivered},
		{order.Delivered, order.Canceled},
		{order.Requested, order.Canceled},
	}
	for _, pair := range valid {
		assert.True(t, order.IsValidTransition(pair[0], pair[1]),
			"%s -> %s should be legal", pair[0], pair[1])
	}

	invalid := [][2]order.Status{
		{order.Canceled, order.Requested},
		{order.Requested, order.Shipped},
		{order.Delivered, order.Production},
		{order.Quoted, order.Quoted},
	}
	for _, pair := range invalid {
		assert.False(t, order.IsValidTransition(pair[0], pair[1]),
			"%s -> %s should be illegal", pair[0], pair[1])
	}
}

func TestPriority(t *testing.T) {
	ordered := []order.Status{
		order.Unknown, order.Requested, order.Quoted, order.Expired, order.Confirmed,
		order.Production, order.Completed, order.Shipped, order.Delivered, order.Canceled,
	}

	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, order.Priority(ordered[i]), order.Priority(ordered[i-1]),
			"%s must outrank %s", ordered[i], ordered[i-1])
	}
}

func TestMilestone(t *testing.T) {
	t.Run("targets", func(t *testing.T) {
		assert.Equal(t, order.Shipped, order.MilestoneShipped.TargetStatus())
		assert.Equal(t, order.Canceled, order.MilestoneCanceled.TargetStatus())
	})

	t.Run("string round trip", func(t *testing.T) {
		m, ok := order.MilestoneFromString("production_started_at")
		require.True(t, ok)
		assert.Equal(t, order.MilestoneProductionStarted, m)
		assert.Equal(t, "production_started_at", m.String())
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, order.MilestoneDelivered.Validate())
		require.Error(t, order.MilestoneUnknown.Validate())
		require.Error(t, order.Milestone(77).Validate())
	})
}
