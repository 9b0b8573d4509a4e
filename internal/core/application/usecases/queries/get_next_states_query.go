package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var ErrGetNextStatesQueryIsNotConstructed = errors.New(
	"GetNextStatesQuery must be created via NewGetNextStatesQuery constructor",
)

// GetNextStatesQuery asks which statuses an order in the given status may
// move to next. Clients use the answer to render only the actions that the
// transition table would accept.
type GetNextStatesQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetNextStatesQuery creates a query for the given status.
func NewGetNextStatesQuery(status order.Status) (GetNextStatesQuery, error) {
	query := GetNextStatesQuery{guard: guard.NewConstructorGuard()}

	if err := query.setStatus(status); err != nil {
		return GetNextStatesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNextStatesQuery) Validate() error {
	return q.guard.Validate(ErrGetNextStatesQueryIsNotConstructed)
}

// Status returns the status being inspected.
func (q GetNextStatesQuery) Status() order.Status {
	return q.status
}

func (q *GetNextStatesQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

// GetNextStatesQueryResponse describes the moves available from a status.
type GetNextStatesQueryResponse struct {
	Status     order.Status
	NextStates []order.Status
	CanCancel  bool
	IsTerminal bool
}
