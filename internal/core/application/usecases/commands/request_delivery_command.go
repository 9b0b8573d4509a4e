package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrRequestDeliveryCommandIsNotConstructed = errors.New(
	"RequestDeliveryCommand must be created via NewRequestDeliveryCommand constructor",
)

// RequestDeliveryCommand represents a request to move a produced order into
// PENDING_DELIVERY.
type RequestDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	tenantID        kernel.UUID
	expectedVersion *int64
	actorID         string

	guard guard.ConstructorGuard
}

// NewRequestDeliveryCommand creates a command to request delivery.
func NewRequestDeliveryCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	expectedVersion *int64,
	actorID string,
) (RequestDeliveryCommand, error) {
	command := RequestDeliveryCommand{
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTenantID(tenantID),
		command.setActorID(actorID),
	); err != nil {
		return RequestDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeliveryCommandIsNotConstructed)
}

// OrderID returns the targeted order's identifier.
func (c RequestDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the owning tenant's identifier.
func (c RequestDeliveryCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ExpectedVersion returns the version the caller loaded, nil to bypass the
// concurrency guard.
func (c RequestDeliveryCommand) ExpectedVersion() *int64 {
	return c.expectedVersion
}

// ActorID returns who requested delivery.
func (c RequestDeliveryCommand) ActorID() string {
	return c.actorID
}

func (c *RequestDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestDeliveryCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *RequestDeliveryCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIsRequired
	}

	c.actorID = actorID
	return nil
}
