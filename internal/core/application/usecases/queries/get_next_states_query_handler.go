package queries

import "context"

// GetNextStatesQueryHandler answers next-state queries straight from the
// transition table. It touches no storage, so it carries no dependencies.
type GetNextStatesQueryHandler struct{}

// NewGetNextStatesQueryHandler creates a handler for next-state queries.
func NewGetNextStatesQueryHandler() GetNextStatesQueryHandler {
	return GetNextStatesQueryHandler{}
}

// Handle resolves the reachable statuses, cancelability and terminality of
// the queried status.
func (h GetNextStatesQueryHandler) Handle(
	_ context.Context,
	query GetNextStatesQuery,
) (GetNextStatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNextStatesQueryResponse{}, err
	}

	status := query.Status()

	return GetNextStatesQueryResponse{
		Status:     status,
		NextStates: status.NextStates(),
		CanCancel:  status.CanCancel(),
		IsTerminal: status.IsTerminal(),
	}, nil
}
