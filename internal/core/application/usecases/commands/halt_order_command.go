package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var (
	ErrHaltOrderCommandIsNotConstructed = errors.New(
		"HaltOrderCommand must be created via NewHaltOrderCommand constructor",
	)
	ErrActorIsRequired = errors.New("actor is required")
)

// HaltOrderCommand represents a request to suspend an in-flight order.
// The reason payload is snapshotted alongside the current status so the
// order can later be resumed into the state it left.
type HaltOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	tenantID        kernel.UUID
	expectedVersion *int64
	actorID         string
	reasonCode      order.PauseReasonCode
	remark          string

	guard guard.ConstructorGuard
}

// NewHaltOrderCommand creates a command to halt an order. A nil
// expectedVersion bypasses the optimistic concurrency check; callers that
// care about lost updates must always supply the version they loaded.
func NewHaltOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	expectedVersion *int64,
	actorID string,
	reasonCode order.PauseReasonCode,
	remark string,
) (HaltOrderCommand, error) {
	command := HaltOrderCommand{
		expectedVersion: expectedVersion,
		remark:          remark,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTenantID(tenantID),
		command.setActorID(actorID),
		command.setReasonCode(reasonCode),
	); err != nil {
		return HaltOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c HaltOrderCommand) Validate() error {
	return c.guard.Validate(ErrHaltOrderCommandIsNotConstructed)
}

// OrderID returns the targeted order's identifier.
func (c HaltOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the owning tenant's identifier.
func (c HaltOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ExpectedVersion returns the version the caller loaded, nil to bypass the
// concurrency guard.
func (c HaltOrderCommand) ExpectedVersion() *int64 {
	return c.expectedVersion
}

// ActorID returns who requested the halt.
func (c HaltOrderCommand) ActorID() string {
	return c.actorID
}

// ReasonCode returns the halt classification.
func (c HaltOrderCommand) ReasonCode() order.PauseReasonCode {
	return c.reasonCode
}

// Remark returns the free-text remark.
func (c HaltOrderCommand) Remark() string {
	return c.remark
}

func (c *HaltOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *HaltOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *HaltOrderCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIsRequired
	}

	c.actorID = actorID
	return nil
}

func (c *HaltOrderCommand) setReasonCode(reasonCode order.PauseReasonCode) error {
	if err := reasonCode.Validate(); err != nil {
		return err
	}

	c.reasonCode = reasonCode
	return nil
}
