package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrRequestCancelOrderCommandIsNotConstructed = errors.New(
		"RequestCancelOrderCommand must be created via NewRequestCancelOrderCommand constructor",
	)
	ErrCancelReasonIsRequired = errors.New("cancel reason is required")
)

// RequestCancelOrderCommand represents a request to open a cancellation for
// an order. Cancellation is approval gated: the command files a change
// request rather than cancelling directly.
type RequestCancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	actorID  string
	reason   string
	remark   string

	guard guard.ConstructorGuard
}

// NewRequestCancelOrderCommand creates a command to request cancellation.
func NewRequestCancelOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	actorID string,
	reason string,
	remark string,
) (RequestCancelOrderCommand, error) {
	command := RequestCancelOrderCommand{
		remark: remark,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTenantID(tenantID),
		command.setActorID(actorID),
		command.setReason(reason),
	); err != nil {
		return RequestCancelOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrRequestCancelOrderCommandIsNotConstructed)
}

// OrderID returns the targeted order's identifier.
func (c RequestCancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the owning tenant's identifier.
func (c RequestCancelOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ActorID returns who requested the cancellation.
func (c RequestCancelOrderCommand) ActorID() string {
	return c.actorID
}

// Reason returns the mandatory cancellation reason.
func (c RequestCancelOrderCommand) Reason() string {
	return c.reason
}

// Remark returns the optional free-text remark.
func (c RequestCancelOrderCommand) Remark() string {
	return c.remark
}

func (c *RequestCancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestCancelOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *RequestCancelOrderCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIsRequired
	}

	c.actorID = actorID
	return nil
}

func (c *RequestCancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrCancelReasonIsRequired
	}

	c.reason = reason
	return nil
}
