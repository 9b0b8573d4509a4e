package order_test

import (
	"testing"

	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPauseReason(t *testing.T) {
	t.Run("should keep the given code and remark", func(t *testing.T) {
		reason := order.NewPauseReason(order.ReasonQualityIssue, "scratched panel")

		assert.Equal(t, order.ReasonQualityIssue, reason.Code)
		assert.Equal(t, "scratched panel", reason.Remark)
		assert.Empty(t, reason.PreviousStatus)
	})

	t.Run("should default an empty code to OTHER", func(t *testing.T) {
		reason := order.NewPauseReason("", "whatever")

		assert.Equal(t, order.ReasonOther, reason.Code)
	})
}

func TestPauseReason_Serialize(t *testing.T) {
	t.Run("should render the canonical JSON document", func(t *testing.T) {
		reason := order.PauseReason{
			Code:           order.ReasonStockShortage,
			Remark:         "supplier delay",
			PreviousStatus: order.InProduction,
		}

		raw, err := reason.Serialize()

		require.NoError(t, err)
		assert.JSONEq(t,
			`{"reason":"STOCK_SHORTAGE","remark":"supplier delay","previousStatus":"IN_PRODUCTION"}`,
			raw)
	})

	t.Run("should omit empty optional fields", func(t *testing.T) {
		raw, err := order.PauseReason{Code: order.ReasonOther}.Serialize()

		require.NoError(t, err)
		assert.JSONEq(t, `{"reason":"OTHER"}`, raw)
	})
}

func TestParsePauseReason(t *testing.T) {
	t.Run("should round trip a serialized reason", func(t *testing.T) {
		original := order.PauseReason{
			Code:           order.ReasonCustomerRequest,
			Remark:         "vacation",
			PreviousStatus: order.PendingDelivery,
		}
		raw, err := original.Serialize()
		require.NoError(t, err)

		parsed := order.ParsePauseReason(raw)

		assert.Equal(t, original, parsed)
	})

	t.Run("should map a legacy bare string to OTHER with the raw value as remark", func(t *testing.T) {
		parsed := order.ParsePauseReason("customer went on vacation")

		assert.Equal(t, order.ReasonOther, parsed.Code)
		assert.Equal(t, "customer went on vacation", parsed.Remark)
		assert.Empty(t, parsed.PreviousStatus)
	})

	t.Run("should map an empty value to a bare OTHER", func(t *testing.T) {
		parsed := order.ParsePauseReason("")

		assert.Equal(t, order.PauseReason{Code: order.ReasonOther}, parsed)
	})

	t.Run("should default a JSON document without a code to OTHER", func(t *testing.T) {
		parsed := order.ParsePauseReason(`{"remark":"just a note"}`)

		assert.Equal(t, order.ReasonOther, parsed.Code)
		assert.Equal(t, "just a note", parsed.Remark)
	})
}
