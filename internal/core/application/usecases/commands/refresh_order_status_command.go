package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrRefreshOrderStatusCommandIsNotConstructed = errors.New(
	"RefreshOrderStatusCommand must be created via NewRefreshOrderStatusCommand constructor",
)

// RefreshOrderStatusCommand represents a request to re-derive an order's
// status from its child purchase orders and install tasks.
type RefreshOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	actorID  string

	guard guard.ConstructorGuard
}

// NewRefreshOrderStatusCommand creates a command to refresh an order's
// status. actorID identifies who (or which job) triggered the refresh for
// the audit trail.
func NewRefreshOrderStatusCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	actorID string,
) (RefreshOrderStatusCommand, error) {
	command := RefreshOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTenantID(tenantID),
		command.setActorID(actorID),
	); err != nil {
		return RefreshOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrRefreshOrderStatusCommandIsNotConstructed)
}

// OrderID returns the targeted order's identifier.
func (c RefreshOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the owning tenant's identifier.
func (c RefreshOrderStatusCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ActorID returns who triggered the refresh.
func (c RefreshOrderStatusCommand) ActorID() string {
	return c.actorID
}

func (c *RefreshOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RefreshOrderStatusCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *RefreshOrderStatusCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIsRequired
	}

	c.actorID = actorID
	return nil
}
