package order_test

import (
	"strings"
	"testing"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.GenerateOrderNo(time.Now()),
		1000,
		0,
		order.SettlementPrepaid,
	)
	require.NoError(t, err)
	return o
}

func mustRestoreOrder(t *testing.T, status order.Status, version int64) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"ORD20260101ABCDEF",
		status,
		version,
		1000,
		1000,
		order.SettlementPrepaid,
		nil,
		nil,
		0,
		nil,
		nil,
	)
	require.NoError(t, err)
	return o
}

func TestOrder_NewOrder(t *testing.T) {
	t.Run("should create order in DRAFT with version 0", func(t *testing.T) {
		id := kernel.NewUUID()
		tenantID := kernel.NewUUID()

		o, err := order.NewOrder(id, tenantID, "ORD20260101ABCDEF", 1500, 500, order.SettlementCredit)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.TenantID().IsEqual(tenantID))
		assert.Equal(t, "ORD20260101ABCDEF", o.OrderNo())
		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, int64(0), o.Version())
		assert.Equal(t, 1500.0, o.TotalAmount())
		assert.Equal(t, 500.0, o.PaidAmount())
		assert.Equal(t, 1000.0, o.BalanceAmount())
		assert.Equal(t, order.SettlementCredit, o.SettlementType())
		assert.Nil(t, o.PausedAt())
		assert.Nil(t, o.PauseReason())
		assert.Zero(t, o.PauseCumulativeDays())
		assert.Nil(t, o.CompletedAt())
		assert.Nil(t, o.ClosedAt())
		require.NoError(t, o.Validate())
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		testCases := []struct {
			name string
			run  func() (*order.Order, error)
		}{
			{"empty id", func() (*order.Order, error) {
				return order.NewOrder(kernel.UUID{}, kernel.NewUUID(), "ORD1", 100, 0, order.SettlementCash)
			}},
			{"empty tenant id", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.UUID{}, "ORD1", 100, 0, order.SettlementCash)
			}},
			{"empty order number", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", 100, 0, order.SettlementCash)
			}},
			{"negative total", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "ORD1", -1, 0, order.SettlementCash)
			}},
			{"negative paid amount", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "ORD1", 100, -1, order.SettlementCash)
			}},
			{"unknown settlement type", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "ORD1", 100, 0, order.SettlementType("BARTER"))
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				o, err := tc.run()

				require.Error(t, err)
				assert.Nil(t, o)
			})
		}
	})

	t.Run("should collect all validation errors at once", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), "", -5, 0, order.SettlementCash)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_RestoreOrder(t *testing.T) {
	t.Run("should trust the stored status and version", func(t *testing.T) {
		pausedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		reason := order.PauseReason{
			Code:           order.ReasonStockShortage,
			Remark:         "supplier delay",
			PreviousStatus: order.InProduction,
		}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "ORD20260301AA11BB",
			order.Halted, 7, 2000, 2000, order.SettlementPrepaid,
			&pausedAt, &reason, 3, nil, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Halted, o.Status())
		assert.Equal(t, int64(7), o.Version())
		require.NotNil(t, o.PausedAt())
		assert.Equal(t, pausedAt, *o.PausedAt())
		require.NotNil(t, o.PauseReason())
		assert.Equal(t, order.InProduction, o.PauseReason().PreviousStatus)
		assert.Equal(t, 3, o.PauseCumulativeDays())
	})

	t.Run("should reject a status outside the enum", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "ORD1",
			order.Status("NOT_A_STATUS"), 1, 100, 0, order.SettlementCash,
			nil, nil, 0, nil, nil,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a negative version", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "ORD1",
			order.Draft, -1, 100, 0, order.SettlementCash,
			nil, nil, 0, nil, nil,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject a nil order", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject a zero-value order", func(t *testing.T) {
		assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestGenerateOrderNo(t *testing.T) {
	t.Run("should embed the date and a hex suffix", func(t *testing.T) {
		now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

		orderNo := order.GenerateOrderNo(now)

		assert.Len(t, orderNo, 17)
		assert.True(t, strings.HasPrefix(orderNo, "ORD20260828"))
		suffix := orderNo[len("ORD20260828"):]
		assert.Regexp(t, "^[0-9A-F]{6}$", suffix)
	})

	t.Run("should vary between calls", func(t *testing.T) {
		now := time.Now()
		seen := make(map[string]bool)
		for i := 0; i < 32; i++ {
			seen[order.GenerateOrderNo(now)] = true
		}
		assert.Greater(t, len(seen), 1)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("should apply a legal transition and bump the version", func(t *testing.T) {
		o := mustNewOrder(t)

		err := o.TransitionTo(order.PendingMeasure, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.PendingMeasure, o.Status())
		assert.Equal(t, int64(1), o.Version())
	})

	t.Run("should bump the version on a self transition", func(t *testing.T) {
		o := mustNewOrder(t)

		err := o.TransitionTo(order.Draft, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, int64(1), o.Version())
	})

	t.Run("should reject an illegal transition without side effects", func(t *testing.T) {
		o := mustNewOrder(t)

		err := o.TransitionTo(order.Completed, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.IsType(t, &errs.InvalidStateTransitionError{}, err)
		assert.Contains(t, err.Error(), "DRAFT")
		assert.Contains(t, err.Error(), "COMPLETED")
		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, int64(0), o.Version())
	})

	t.Run("should reject a target outside the enum", func(t *testing.T) {
		o := mustNewOrder(t)

		err := o.TransitionTo(order.Status("NOT_A_STATUS"), time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should stamp completedAt when reaching COMPLETED", func(t *testing.T) {
		o := mustRestoreOrder(t, order.InstallationCompleted, 4)
		now := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

		err := o.TransitionTo(order.Completed, now)

		require.NoError(t, err)
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, now, *o.CompletedAt())
		assert.Nil(t, o.ClosedAt())
		assert.Equal(t, int64(5), o.Version())
	})

	t.Run("should stamp closedAt when reaching CANCELLED", func(t *testing.T) {
		o := mustRestoreOrder(t, order.Quoted, 2)
		now := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

		err := o.TransitionTo(order.Cancelled, now)

		require.NoError(t, err)
		require.NotNil(t, o.ClosedAt())
		assert.Equal(t, now, *o.ClosedAt())
		assert.Nil(t, o.CompletedAt())
	})
}

func TestOrder_Halt(t *testing.T) {
	t.Run("should snapshot the current status into the reason", func(t *testing.T) {
		o := mustRestoreOrder(t, order.InProduction, 3)
		now := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)

		err := o.Halt(order.NewPauseReason(order.ReasonStockShortage, "supplier delay"), now)

		require.NoError(t, err)
		assert.Equal(t, order.Halted, o.Status())
		assert.Equal(t, int64(4), o.Version())
		require.NotNil(t, o.PausedAt())
		assert.Equal(t, now, *o.PausedAt())
		require.NotNil(t, o.PauseReason())
		assert.Equal(t, order.ReasonStockShortage, o.PauseReason().Code)
		assert.Equal(t, "supplier delay", o.PauseReason().Remark)
		assert.Equal(t, order.InProduction, o.PauseReason().PreviousStatus)
	})

	t.Run("should default an empty reason code to OTHER", func(t *testing.T) {
		o := mustRestoreOrder(t, order.Signed, 1)

		err := o.Halt(order.PauseReason{Remark: "free text"}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.ReasonOther, o.PauseReason().Code)
	})

	t.Run("should reject halting from states without a HALTED edge", func(t *testing.T) {
		for _, status := range []order.Status{order.Draft, order.Quoted, order.InstallationCompleted} {
			t.Run(status.String(), func(t *testing.T) {
				o := mustRestoreOrder(t, status, 1)

				err := o.Halt(order.NewPauseReason(order.ReasonOther, ""), time.Now())

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
				assert.Equal(t, status, o.Status())
				assert.Equal(t, int64(1), o.Version())
				assert.Nil(t, o.PausedAt())
			})
		}
	})

	t.Run("should reject halting an already halted order", func(t *testing.T) {
		o := mustRestoreOrder(t, order.InProduction, 1)
		require.NoError(t, o.Halt(order.NewPauseReason(order.ReasonOther, ""), time.Now()))

		err := o.Halt(order.NewPauseReason(order.ReasonOther, "again"), time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestOrder_Resume(t *testing.T) {
	t.Run("should restore the pre-halt status and clear the snapshot", func(t *testing.T) {
		o := mustRestoreOrder(t, order.PendingDelivery, 5)
		haltedAt := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
		require.NoError(t, o.Halt(order.NewPauseReason(order.ReasonSiteNotReady, ""), haltedAt))

		restored, err := o.Resume(haltedAt.Add(36 * time.Hour))

		require.NoError(t, err)
		assert.Equal(t, order.PendingDelivery, restored)
		assert.Equal(t, order.PendingDelivery, o.Status())
		assert.Nil(t, o.PausedAt())
		assert.Nil(t, o.PauseReason())
		assert.Equal(t, 2, o.PauseCumulativeDays(), "36h rounds up to 2 days")
		assert.Equal(t, int64(7), o.Version(), "halt and resume each bump once")
	})

	t.Run("should round trip a SIGNED order even though HALTED has no SIGNED edge", func(t *testing.T) {
		o := mustRestoreOrder(t, order.Signed, 2)
		require.NoError(t, o.Halt(order.NewPauseReason(order.ReasonCustomerRequest, ""), time.Now()))

		restored, err := o.Resume(time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Signed, restored)
		assert.Equal(t, order.Signed, o.Status())
	})

	t.Run("should accumulate pause days across repeated halts", func(t *testing.T) {
		o := mustRestoreOrder(t, order.InProduction, 1)
		base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

		require.NoError(t, o.Halt(order.NewPauseReason(order.ReasonOther, ""), base))
		_, err := o.Resume(base.Add(24 * time.Hour))
		require.NoError(t, err)

		require.NoError(t, o.Halt(order.NewPauseReason(order.ReasonOther, ""), base.Add(48*time.Hour)))
		_, err = o.Resume(base.Add(49 * time.Hour))
		require.NoError(t, err)

		assert.Equal(t, 2, o.PauseCumulativeDays())
	})

	t.Run("should reject resuming a non-halted order", func(t *testing.T) {
		o := mustRestoreOrder(t, order.InProduction, 1)

		_, err := o.Resume(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidOperation)
		assert.Contains(t, err.Error(), "resume")
		assert.Equal(t, order.InProduction, o.Status())
		assert.Equal(t, int64(1), o.Version())
	})

	t.Run("should reject a snapshot without a previous status", func(t *testing.T) {
		reason := order.PauseReason{Code: order.ReasonOther}
		pausedAt := time.Now()
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "ORD1",
			order.Halted, 3, 100, 100, order.SettlementCash,
			&pausedAt, &reason, 0, nil, nil,
		)
		require.NoError(t, err)

		_, err = o.Resume(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidOperation)
		assert.Equal(t, order.Halted, o.Status())
	})

	t.Run("should reject a snapshot whose status can no longer be halted", func(t *testing.T) {
		reason := order.PauseReason{Code: order.ReasonOther, PreviousStatus: order.Quoted}
		pausedAt := time.Now()
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "ORD1",
			order.Halted, 3, 100, 100, order.SettlementCash,
			&pausedAt, &reason, 0, nil, nil,
		)
		require.NoError(t, err)

		_, err = o.Resume(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Halted, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a non-terminal order and stamp closedAt", func(t *testing.T) {
		o := mustRestoreOrder(t, order.PendingProduction, 2)
		now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

		err := o.Cancel(now)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.ClosedAt())
		assert.Equal(t, now, *o.ClosedAt())
		assert.Equal(t, int64(3), o.Version())
	})

	t.Run("should cancel a halted order", func(t *testing.T) {
		o := mustRestoreOrder(t, order.InProduction, 1)
		require.NoError(t, o.Halt(order.NewPauseReason(order.ReasonOther, ""), time.Now()))

		err := o.Cancel(time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject cancelling terminal orders", func(t *testing.T) {
		for _, status := range []order.Status{order.Completed, order.Cancelled, order.Paused} {
			t.Run(status.String(), func(t *testing.T) {
				o := mustRestoreOrder(t, status, 1)

				err := o.Cancel(time.Now())

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
				assert.Equal(t, status, o.Status())
				assert.Equal(t, int64(1), o.Version())
			})
		}
	})
}

func TestOrder_IsFullyPaid(t *testing.T) {
	t.Run("should report true when nothing is outstanding", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "ORD1", 1000, 1000, order.SettlementPrepaid)
		require.NoError(t, err)

		assert.True(t, o.IsFullyPaid())
	})

	t.Run("should report false while a balance remains", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "ORD1", 1000, 999, order.SettlementPrepaid)
		require.NoError(t, err)

		assert.False(t, o.IsFullyPaid())
		assert.Equal(t, 1.0, o.BalanceAmount())
	})

	t.Run("should report true on overpayment", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "ORD1", 1000, 1200, order.SettlementPrepaid)
		require.NoError(t, err)

		assert.True(t, o.IsFullyPaid())
		assert.Equal(t, -200.0, o.BalanceAmount())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by identity", func(t *testing.T) {
		id := kernel.NewUUID()
		first, err := order.NewOrder(id, kernel.NewUUID(), "ORD1", 100, 0, order.SettlementCash)
		require.NoError(t, err)
		second, err := order.NewOrder(id, kernel.NewUUID(), "ORD2", 999, 0, order.SettlementCredit)
		require.NoError(t, err)
		third := mustNewOrder(t)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(third))
		assert.False(t, first.IsEqual(nil))
	})
}

func TestOrder_VersionMonotonicity(t *testing.T) {
	t.Run("should grow by exactly one per accepted mutation", func(t *testing.T) {
		o := mustRestoreOrder(t, order.Paid, 10)

		require.NoError(t, o.TransitionTo(order.PendingPO, time.Now()))
		assert.Equal(t, int64(11), o.Version())

		require.NoError(t, o.TransitionTo(order.PendingProduction, time.Now()))
		assert.Equal(t, int64(12), o.Version())

		require.NoError(t, o.Halt(order.NewPauseReason(order.ReasonOther, ""), time.Now()))
		assert.Equal(t, int64(13), o.Version())

		_, err := o.Resume(time.Now())
		require.NoError(t, err)
		assert.Equal(t, int64(14), o.Version())

		require.NoError(t, o.Cancel(time.Now()))
		assert.Equal(t, int64(15), o.Version())
	})

	t.Run("should not change on rejected mutations", func(t *testing.T) {
		o := mustRestoreOrder(t, order.Draft, 10)

		require.Error(t, o.TransitionTo(order.Completed, time.Now()))
		require.Error(t, o.Halt(order.NewPauseReason(order.ReasonOther, ""), time.Now()))
		_, err := o.Resume(time.Now())
		require.Error(t, err)

		assert.Equal(t, int64(10), o.Version())
	})
}
