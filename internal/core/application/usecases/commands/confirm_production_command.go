package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrConfirmProductionCommandIsNotConstructed = errors.New(
	"ConfirmProductionCommand must be created via NewConfirmProductionCommand constructor",
)

// ConfirmProductionCommand represents a request to move an order into
// PENDING_PRODUCTION once its purchase prerequisites are settled.
type ConfirmProductionCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	tenantID        kernel.UUID
	expectedVersion *int64
	actorID         string

	guard guard.ConstructorGuard
}

// NewConfirmProductionCommand creates a command to confirm production.
func NewConfirmProductionCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	expectedVersion *int64,
	actorID string,
) (ConfirmProductionCommand, error) {
	command := ConfirmProductionCommand{
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTenantID(tenantID),
		command.setActorID(actorID),
	); err != nil {
		return ConfirmProductionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmProductionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmProductionCommandIsNotConstructed)
}

// OrderID returns the targeted order's identifier.
func (c ConfirmProductionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the owning tenant's identifier.
func (c ConfirmProductionCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ExpectedVersion returns the version the caller loaded, nil to bypass the
// concurrency guard.
func (c ConfirmProductionCommand) ExpectedVersion() *int64 {
	return c.expectedVersion
}

// ActorID returns who confirmed production.
func (c ConfirmProductionCommand) ActorID() string {
	return c.actorID
}

func (c *ConfirmProductionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmProductionCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *ConfirmProductionCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIsRequired
	}

	c.actorID = actorID
	return nil
}
