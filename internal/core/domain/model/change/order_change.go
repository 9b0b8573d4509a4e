// Package change contains the order change request aggregate. A change
// request records an intent to alter a sales order (today: cancellation) and
// tracks its approval outcome.
package change

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderChangeIsNotConstructed is returned when an OrderChange instance
	// was not created through NewOrderChange or RestoreOrderChange.
	ErrOrderChangeIsNotConstructed = errors.New("OrderChange must be created via NewOrderChange or RestoreOrderChange constructor")
)

// Type classifies what the change request wants to do to the order.
type Type string

const (
	// TypeCancel requests cancellation of the whole order.
	TypeCancel Type = "CANCEL"

	// TypeAmount requests an amount adjustment.
	TypeAmount Type = "AMOUNT"

	// TypeItems requests a change to the ordered items.
	TypeItems Type = "ITEMS"
)

// Validate checks membership in the change type enum.
func (t Type) Validate() error {
	switch t {
	case TypeCancel, TypeAmount, TypeItems:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("changeType is invalid",
			fmt.Errorf("%q is not a valid change type", string(t)))
	}
}

// Status is the approval state of a change request.
type Status string

const (
	// StatusPending means the request awaits an approval decision.
	StatusPending Status = "PENDING"

	// StatusApproved means the request was approved and applied.
	StatusApproved Status = "APPROVED"

	// StatusRejected means the request was turned down.
	StatusRejected Status = "REJECTED"
)

// Validate checks membership in the change status enum.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("change status is invalid",
			fmt.Errorf("%q is not a valid change status", string(s)))
	}
}

// OrderChange is the aggregate for a single change request against an order.
// For cancellations diffAmount carries the negated order total, and the
// original/new data snapshots capture the order state around the change for
// the audit trail.
type OrderChange struct {
	id       kernel.UUID
	tenantID kernel.UUID
	orderID  kernel.UUID

	changeType Type
	reason     string
	status     Status

	diffAmount   float64
	originalData string
	newData      string

	requestedBy string
	requestedAt time.Time
	approvedBy  string
	approvedAt  *time.Time

	isConstructed bool
}

// NewOrderChange creates a change request in PENDING status.
func NewOrderChange(
	id kernel.UUID,
	tenantID kernel.UUID,
	orderID kernel.UUID,
	changeType Type,
	reason string,
	diffAmount float64,
	originalData string,
	newData string,
	requestedBy string,
	now time.Time,
) (*OrderChange, error) {
	c := &OrderChange{
		status:        StatusPending,
		diffAmount:    diffAmount,
		originalData:  originalData,
		newData:       newData,
		requestedAt:   now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setTenantID(tenantID),
		c.setOrderID(orderID),
		c.setChangeType(changeType),
		c.setReason(reason),
		c.setRequestedBy(requestedBy),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreOrderChange reconstructs a change request from persistence.
func RestoreOrderChange(
	id kernel.UUID,
	tenantID kernel.UUID,
	orderID kernel.UUID,
	changeType Type,
	reason string,
	status Status,
	diffAmount float64,
	originalData string,
	newData string,
	requestedBy string,
	requestedAt time.Time,
	approvedBy string,
	approvedAt *time.Time,
) (*OrderChange, error) {
	c := &OrderChange{
		diffAmount:    diffAmount,
		originalData:  originalData,
		newData:       newData,
		requestedAt:   requestedAt,
		approvedBy:    approvedBy,
		approvedAt:    approvedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setTenantID(tenantID),
		c.setOrderID(orderID),
		c.setChangeType(changeType),
		c.setReason(reason),
		c.setRequestedBy(requestedBy),
		c.setStatus(status),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the OrderChange was constructed through a constructor.
func (c *OrderChange) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrOrderChangeIsNotConstructed
	}
	return nil
}

// ID returns the change request's identifier.
func (c *OrderChange) ID() kernel.UUID {
	return c.id
}

// TenantID returns the owning tenant's identifier.
func (c *OrderChange) TenantID() kernel.UUID {
	return c.tenantID
}

// OrderID returns the targeted order's identifier.
func (c *OrderChange) OrderID() kernel.UUID {
	return c.orderID
}

// ChangeType returns what the request wants to change.
func (c *OrderChange) ChangeType() Type {
	return c.changeType
}

// Reason returns the requester's free-text reason.
func (c *OrderChange) Reason() string {
	return c.reason
}

// Status returns the approval state.
func (c *OrderChange) Status() Status {
	return c.status
}

// DiffAmount returns the monetary delta the change implies.
func (c *OrderChange) DiffAmount() float64 {
	return c.diffAmount
}

// OriginalData returns the pre-change order snapshot.
func (c *OrderChange) OriginalData() string {
	return c.originalData
}

// NewData returns the post-change order snapshot.
func (c *OrderChange) NewData() string {
	return c.newData
}

// RequestedBy returns who filed the request.
func (c *OrderChange) RequestedBy() string {
	return c.requestedBy
}

// RequestedAt returns when the request was filed.
func (c *OrderChange) RequestedAt() time.Time {
	return c.requestedAt
}

// ApprovedBy returns who decided the request, empty while pending.
func (c *OrderChange) ApprovedBy() string {
	return c.approvedBy
}

// ApprovedAt returns when the request was decided, nil while pending.
func (c *OrderChange) ApprovedAt() *time.Time {
	return c.approvedAt
}

// Approve marks a pending request as approved.
func (c *OrderChange) Approve(approver string, now time.Time) error {
	return c.decide(StatusApproved, approver, now)
}

// Reject marks a pending request as rejected.
func (c *OrderChange) Reject(approver string, now time.Time) error {
	return c.decide(StatusRejected, approver, now)
}

func (c *OrderChange) decide(decision Status, approver string, now time.Time) error {
	if c.status != StatusPending {
		return errs.NewInvalidOperationError("decide change request",
			fmt.Sprintf("change request is %s, not %s", c.status, StatusPending))
	}
	if approver == "" {
		return errs.NewValueIsRequiredError("approver")
	}

	c.status = decision
	c.approvedBy = approver
	t := now
	c.approvedAt = &t
	return nil
}

func (c *OrderChange) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *OrderChange) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *OrderChange) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *OrderChange) setChangeType(changeType Type) error {
	if err := changeType.Validate(); err != nil {
		return err
	}
	c.changeType = changeType
	return nil
}

func (c *OrderChange) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}

func (c *OrderChange) setRequestedBy(requestedBy string) error {
	if requestedBy == "" {
		return errs.NewValueIsRequiredError("requestedBy")
	}
	c.requestedBy = requestedBy
	return nil
}

func (c *OrderChange) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
