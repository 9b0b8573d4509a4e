package queries_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNextStatesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	handler := queries.NewGetNextStatesQueryHandler()

	t.Run("should list the moves out of a working status", func(t *testing.T) {
		query, err := queries.NewGetNextStatesQuery(order.InProduction)
		require.NoError(t, err)

		response, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, order.InProduction, response.Status)
		assert.ElementsMatch(t,
			[]order.Status{order.PendingDelivery, order.Halted, order.Cancelled},
			response.NextStates)
		assert.True(t, response.CanCancel)
		assert.False(t, response.IsTerminal)
	})

	t.Run("should report a terminal status with no moves", func(t *testing.T) {
		query, err := queries.NewGetNextStatesQuery(order.Completed)
		require.NoError(t, err)

		response, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, response.NextStates)
		assert.False(t, response.CanCancel)
		assert.True(t, response.IsTerminal)
	})

	t.Run("should reject an unknown status at construction", func(t *testing.T) {
		_, err := queries.NewGetNextStatesQuery(order.Status("SHIPPED"))
		require.Error(t, err)
	})

	t.Run("should reject a query that bypassed the constructor", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.GetNextStatesQuery{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be created via NewGetNextStatesQuery constructor")
	})
}
