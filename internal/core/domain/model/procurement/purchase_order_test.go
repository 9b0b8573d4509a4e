package procurement_test

import (
	"fmt"
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/procurement"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate every enum member", func(t *testing.T) {
		statuses := []procurement.Status{
			procurement.StatusDraft,
			procurement.StatusOrdered,
			procurement.StatusInProduction,
			procurement.StatusShipped,
			procurement.StatusReceived,
			procurement.StatusCompleted,
			procurement.StatusCancelled,
		}

		for _, status := range statuses {
			t.Run(string(status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		err := procurement.Status("LOST").Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsPlaced(t *testing.T) {
	t.Run("should count ORDERED and later non-cancelled states", func(t *testing.T) {
		placed := []procurement.Status{
			procurement.StatusOrdered,
			procurement.StatusInProduction,
			procurement.StatusShipped,
			procurement.StatusReceived,
			procurement.StatusCompleted,
		}
		for _, status := range placed {
			t.Run(string(status), func(t *testing.T) {
				assert.True(t, status.IsPlaced())
			})
		}
	})

	t.Run("should exclude DRAFT and CANCELLED", func(t *testing.T) {
		assert.False(t, procurement.StatusDraft.IsPlaced())
		assert.False(t, procurement.StatusCancelled.IsPlaced())
	})
}

func TestStatus_IsFulfilled(t *testing.T) {
	t.Run("should count only RECEIVED and COMPLETED", func(t *testing.T) {
		testCases := []struct {
			status   procurement.Status
			expected bool
		}{
			{procurement.StatusDraft, false},
			{procurement.StatusOrdered, false},
			{procurement.StatusInProduction, false},
			{procurement.StatusShipped, false},
			{procurement.StatusReceived, true},
			{procurement.StatusCompleted, true},
			{procurement.StatusCancelled, false},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s is %v", tc.status, tc.expected), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.IsFulfilled())
			})
		}
	})
}

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("should create read view", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()

		po, err := procurement.NewPurchaseOrder(id, orderID, procurement.StatusShipped)

		require.NoError(t, err)
		assert.True(t, po.ID().IsEqual(id))
		assert.True(t, po.OrderID().IsEqual(orderID))
		assert.Equal(t, procurement.StatusShipped, po.Status())
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		_, err := procurement.NewPurchaseOrder(kernel.UUID{}, kernel.NewUUID(), procurement.StatusDraft)
		require.Error(t, err)

		_, err = procurement.NewPurchaseOrder(kernel.NewUUID(), kernel.UUID{}, procurement.StatusDraft)
		require.Error(t, err)

		_, err = procurement.NewPurchaseOrder(kernel.NewUUID(), kernel.NewUUID(), procurement.Status("LOST"))
		require.Error(t, err)
	})
}
