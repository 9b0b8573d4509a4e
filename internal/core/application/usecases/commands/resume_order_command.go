package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrResumeOrderCommandIsNotConstructed = errors.New(
	"ResumeOrderCommand must be created via NewResumeOrderCommand constructor",
)

// ResumeOrderCommand represents a request to restore a halted order into the
// status it held before the halt.
type ResumeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	tenantID        kernel.UUID
	expectedVersion *int64
	actorID         string

	guard guard.ConstructorGuard
}

// NewResumeOrderCommand creates a command to resume a halted order.
func NewResumeOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	expectedVersion *int64,
	actorID string,
) (ResumeOrderCommand, error) {
	command := ResumeOrderCommand{
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTenantID(tenantID),
		command.setActorID(actorID),
	); err != nil {
		return ResumeOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeOrderCommand) Validate() error {
	return c.guard.Validate(ErrResumeOrderCommandIsNotConstructed)
}

// OrderID returns the targeted order's identifier.
func (c ResumeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the owning tenant's identifier.
func (c ResumeOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ExpectedVersion returns the version the caller loaded, nil to bypass the
// concurrency guard.
func (c ResumeOrderCommand) ExpectedVersion() *int64 {
	return c.expectedVersion
}

// ActorID returns who requested the resume.
func (c ResumeOrderCommand) ActorID() string {
	return c.actorID
}

func (c *ResumeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ResumeOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *ResumeOrderCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIsRequired
	}

	c.actorID = actorID
	return nil
}
