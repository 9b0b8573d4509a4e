// Package http exposes the lifecycle engine's operations over HTTP. Every
// order route is tenant-scoped through the X-Tenant-Id header and acts on
// behalf of the user in X-User-Id.
package http

import (
	"errors"
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	tenantHeader = "X-Tenant-Id"
	userHeader   = "X-User-Id"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	haltOrderHandler         commands.HaltOrderCommandHandler
	resumeOrderHandler       commands.ResumeOrderCommandHandler
	requestCancelHandler     commands.RequestCancelOrderCommandHandler
	confirmProductionHandler commands.ConfirmProductionCommandHandler
	requestDeliveryHandler   commands.RequestDeliveryCommandHandler
	refreshStatusHandler     commands.RefreshOrderStatusCommandHandler

	getNextStatesHandler   queries.GetNextStatesQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	haltOrderHandler commands.HaltOrderCommandHandler,
	resumeOrderHandler commands.ResumeOrderCommandHandler,
	requestCancelHandler commands.RequestCancelOrderCommandHandler,
	confirmProductionHandler commands.ConfirmProductionCommandHandler,
	requestDeliveryHandler commands.RequestDeliveryCommandHandler,
	refreshStatusHandler commands.RefreshOrderStatusCommandHandler,
	getNextStatesHandler queries.GetNextStatesQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		haltOrderHandler:         haltOrderHandler,
		resumeOrderHandler:       resumeOrderHandler,
		requestCancelHandler:     requestCancelHandler,
		confirmProductionHandler: confirmProductionHandler,
		requestDeliveryHandler:   requestDeliveryHandler,
		refreshStatusHandler:     refreshStatusHandler,
		getNextStatesHandler:     getNextStatesHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
	}
}

// RegisterRoutes mounts all routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/orders/:id/halt", s.HaltOrder)
	api.POST("/orders/:id/resume", s.ResumeOrder)
	api.POST("/orders/:id/cancel-request", s.RequestCancelOrder)
	api.POST("/orders/:id/confirm-production", s.ConfirmProduction)
	api.POST("/orders/:id/request-delivery", s.RequestDelivery)
	api.POST("/orders/:id/refresh-status", s.RefreshOrderStatus)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/statuses/:status/next-states", s.GetNextStates)
}

// Error is the uniform error payload.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type haltRequest struct {
	Reason          string `json:"reason"`
	Remark          string `json:"remark"`
	ExpectedVersion *int64 `json:"expectedVersion"`
}

type versionedRequest struct {
	ExpectedVersion *int64 `json:"expectedVersion"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
	Remark string `json:"remark"`
}

// HaltOrder handles POST /api/v1/orders/:id/halt.
func (s *Server) HaltOrder(ctx echo.Context) error {
	orderID, tenantID, actorID, err := requestScope(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body haltRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	command, err := commands.NewHaltOrderCommand(
		orderID, tenantID, body.ExpectedVersion, actorID,
		order.PauseReasonCode(body.Reason), body.Remark)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.haltOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"orderNo":  result.OrderNo,
		"status":   order.Halted,
		"snapshot": result.Snapshot,
	})
}

// ResumeOrder handles POST /api/v1/orders/:id/resume.
func (s *Server) ResumeOrder(ctx echo.Context) error {
	orderID, tenantID, actorID, err := requestScope(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body versionedRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	command, err := commands.NewResumeOrderCommand(orderID, tenantID, body.ExpectedVersion, actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.resumeOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"orderNo": result.OrderNo,
		"status":  result.RestoredStatus,
	})
}

// RequestCancelOrder handles POST /api/v1/orders/:id/cancel-request.
func (s *Server) RequestCancelOrder(ctx echo.Context) error {
	orderID, tenantID, actorID, err := requestScope(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body cancelRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	command, err := commands.NewRequestCancelOrderCommand(orderID, tenantID, actorID, body.Reason, body.Remark)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.requestCancelHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	response := map[string]any{
		"outcome":  result.Outcome,
		"changeId": result.ChangeID.String(),
	}
	if result.ApprovalID != "" {
		response["approvalId"] = result.ApprovalID
	}

	status := http.StatusAccepted
	if result.Outcome == commands.OutcomeCancelled {
		status = http.StatusOK
	}
	return ctx.JSON(status, response)
}

// ConfirmProduction handles POST /api/v1/orders/:id/confirm-production.
func (s *Server) ConfirmProduction(ctx echo.Context) error {
	orderID, tenantID, actorID, err := requestScope(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body versionedRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	command, err := commands.NewConfirmProductionCommand(orderID, tenantID, body.ExpectedVersion, actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.confirmProductionHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{"status": order.PendingProduction})
}

// RequestDelivery handles POST /api/v1/orders/:id/request-delivery.
func (s *Server) RequestDelivery(ctx echo.Context) error {
	orderID, tenantID, actorID, err := requestScope(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body versionedRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	command, err := commands.NewRequestDeliveryCommand(orderID, tenantID, body.ExpectedVersion, actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.requestDeliveryHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{"status": order.PendingDelivery})
}

// RefreshOrderStatus handles POST /api/v1/orders/:id/refresh-status.
func (s *Server) RefreshOrderStatus(ctx echo.Context) error {
	orderID, tenantID, actorID, err := requestScope(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	command, err := commands.NewRefreshOrderStatusCommand(orderID, tenantID, actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.refreshStatusHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	response := map[string]any{"status": result.Status}
	if result.NewStatus != nil {
		response["newStatus"] = *result.NewStatus
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetNextStates handles GET /api/v1/statuses/:status/next-states.
func (s *Server) GetNextStates(ctx echo.Context) error {
	query, err := queries.NewGetNextStatesQuery(order.Status(ctx.Param("status")))
	if err != nil {
		return badRequest(ctx, err)
	}

	response, err := s.getNextStatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"status":     response.Status,
		"nextStates": response.NextStates,
		"canCancel":  response.CanCancel,
		"isTerminal": response.IsTerminal,
	})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Request().Header.Get(tenantHeader))
	if err != nil {
		return badRequest(ctx, errors.New("missing or invalid tenant header"))
	}

	query, err := queries.NewGetActiveOrdersQuery(tenantID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]map[string]any, 0, len(orders))
	for _, row := range orders {
		response = append(response, map[string]any{
			"id":          row.ID.String(),
			"orderNo":     row.OrderNo,
			"status":      row.Status,
			"version":     row.Version,
			"totalAmount": row.TotalAmount,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// requestScope extracts the order ID from the path and the tenant and actor
// from the scope headers.
func requestScope(ctx echo.Context) (kernel.UUID, kernel.UUID, string, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", errors.New("invalid order id")
	}

	tenantID, err := kernel.UUIDFromString(ctx.Request().Header.Get(tenantHeader))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", errors.New("missing or invalid tenant header")
	}

	actorID := ctx.Request().Header.Get(userHeader)
	if actorID == "" {
		return kernel.UUID{}, kernel.UUID{}, "", errors.New("missing user header")
	}

	return orderID, tenantID, actorID, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: "VALIDATION_FAILED", Message: err.Error()})
}

// writeError maps application errors onto the HTTP error taxonomy.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return ctx.JSON(http.StatusConflict, Error{Code: "CONCURRENCY_CONFLICT", Message: err.Error()})
	case errors.Is(err, errs.ErrInvalidStateTransition):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{Code: "INVALID_STATE_TRANSITION", Message: err.Error()})
	case errors.Is(err, errs.ErrInvalidOperation):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{Code: "INVALID_OPERATION", Message: err.Error()})
	case errors.Is(err, errs.ErrApprovalSubmissionFailed):
		return ctx.JSON(http.StatusBadGateway, Error{Code: "APPROVAL_SUBMISSION_FAILED", Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, Error{Code: "VALIDATION_FAILED", Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL", Message: "unexpected error"})
	}
}
