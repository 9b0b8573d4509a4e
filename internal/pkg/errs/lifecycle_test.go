package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrencyConflictError(t *testing.T) {
	t.Run("should create error with record details", func(t *testing.T) {
		err := errs.NewConcurrencyConflictError("order", "a1b2", 7)

		require.Error(t, err)
		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "a1b2", err.ID)
		assert.Equal(t, int64(7), err.ExpectedVersion)
		assert.Equal(t, "concurrency conflict: order a1b2 was modified concurrently, expected version 7", err.Error())
	})

	t.Run("should unwrap to sentinel", func(t *testing.T) {
		err := errs.NewConcurrencyConflictError("order", 42, 1)

		assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)
		assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
	})

	t.Run("should work with errors.As", func(t *testing.T) {
		wrapped := fmt.Errorf("update order: %w", errs.NewConcurrencyConflictError("order", "a1b2", 3))

		var conflictErr *errs.ConcurrencyConflictError
		require.True(t, errors.As(wrapped, &conflictErr))
		assert.Equal(t, int64(3), conflictErr.ExpectedVersion)
	})
}

func TestInvalidStateTransitionError(t *testing.T) {
	t.Run("should create error with edge details", func(t *testing.T) {
		err := errs.NewInvalidStateTransitionError("DRAFT", "COMPLETED")

		require.Error(t, err)
		assert.Equal(t, "DRAFT", err.From)
		assert.Equal(t, "COMPLETED", err.To)
		assert.Equal(t, "invalid state transition: DRAFT -> COMPLETED", err.Error())
	})

	t.Run("should unwrap to sentinel", func(t *testing.T) {
		err := errs.NewInvalidStateTransitionError("SIGNED", "PAID")

		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("should not match other sentinels", func(t *testing.T) {
		err := errs.NewInvalidStateTransitionError("SIGNED", "PAID")

		assert.NotErrorIs(t, err, errs.ErrInvalidOperation)
		assert.NotErrorIs(t, err, errs.ErrConcurrencyConflict)
	})
}

func TestInvalidOperationError(t *testing.T) {
	t.Run("should create error without cause", func(t *testing.T) {
		err := errs.NewInvalidOperationError("resume", "order is DRAFT, not HALTED")

		require.Error(t, err)
		assert.Equal(t, "resume", err.Operation)
		assert.Equal(t, "order is DRAFT, not HALTED", err.Reason)
		assert.Nil(t, err.Cause)
		assert.Equal(t, "operation is invalid: resume: order is DRAFT, not HALTED", err.Error())
	})

	t.Run("should create error with cause", func(t *testing.T) {
		cause := errors.New("snapshot corrupt")
		err := errs.NewInvalidOperationErrorWithCause("resume", "halt snapshot is unusable", cause)

		require.Error(t, err)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "operation is invalid: resume: halt snapshot is unusable (cause: snapshot corrupt)", err.Error())
	})

	t.Run("should unwrap to sentinel", func(t *testing.T) {
		err := errs.NewInvalidOperationError("cancel", "not in a cancelable status")

		assert.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("should sanitize newlines in reason", func(t *testing.T) {
		err := errs.NewInvalidOperationError("halt", "line1\nline2")

		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "line1 line2")
	})
}

func TestApprovalSubmissionFailedError(t *testing.T) {
	t.Run("should create error without cause", func(t *testing.T) {
		err := errs.NewApprovalSubmissionFailedError("ORDER_CANCEL", nil)

		require.Error(t, err)
		assert.Equal(t, "ORDER_CANCEL", err.FlowCode)
		assert.Equal(t, "approval submission failed: ORDER_CANCEL", err.Error())
	})

	t.Run("should create error with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewApprovalSubmissionFailedError("ORDER_CANCEL", cause)

		require.Error(t, err)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "approval submission failed: ORDER_CANCEL (cause: connection refused)", err.Error())
	})

	t.Run("should unwrap to sentinel", func(t *testing.T) {
		err := errs.NewApprovalSubmissionFailedError("ORDER_CANCEL", errors.New("boom"))

		assert.ErrorIs(t, err, errs.ErrApprovalSubmissionFailed)
	})
}
